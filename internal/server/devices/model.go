package devices

import "time"

type Device struct {
	ID           string
	UserName     string
	PasswordHash string
	CreatedAt    time.Time
}
