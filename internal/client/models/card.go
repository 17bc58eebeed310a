// Package models defines client-side data models: the staged scan record is
// payload.Record; this package adds the persisted, user-annotated Card and
// the merge step that builds one.
package models

import "github.com/harshpatel958/kontax/internal/payload"

// Card is the persisted unit shown in history: one scanned contact plus the
// user's own annotation. Contact and event fields are flattened, never
// nested. ID is assigned by the store on insert; a Card is read-only after
// that, except for deletion.
type Card struct {
	ID int64

	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Organization  string
	Designation   string
	LinkedIn      string
	EventTitle    string
	EventDate     string
	EventLocation string
	EventIntent   string

	Notes      string
	Tags       []string
	YourIntent string
	// VoiceNote is a local file path, or "" when no note was recorded.
	VoiceNote string
}

// FullName joins the non-empty name parts for display.
func (c Card) FullName() string {
	switch {
	case c.FirstName != "" && c.LastName != "":
		return c.FirstName + " " + c.LastName
	case c.FirstName != "":
		return c.FirstName
	default:
		return c.LastName
	}
}

// Record returns the contact/event half of the card, e.g. for re-encoding.
func (c Card) Record() payload.Record {
	return payload.Record{
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		Email:         c.Email,
		Phone:         c.Phone,
		Organization:  c.Organization,
		Designation:   c.Designation,
		LinkedIn:      c.LinkedIn,
		EventTitle:    c.EventTitle,
		EventDate:     c.EventDate,
		EventLocation: c.EventLocation,
		EventIntent:   c.EventIntent,
	}
}
