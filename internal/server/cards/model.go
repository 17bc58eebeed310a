package cards

import "time"

// Card is a published contact card. Field names follow the QR wire
// contract, including the historical linkedln spelling.
type Card struct {
	ID           string
	DeviceID     string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Organization string
	Designation  string
	LinkedIn     string
	Title        string
	Date         string
	Location     string
	Intent       string
	CreatedAt    time.Time
}
