package refreshtokens

import "time"

type RefreshToken struct {
	DeviceID  string
	Token     string
	ExpiresAt time.Time
}
