// Package devices manages registered devices and their credentials.
// Each installation of the app registers as a device; tokens are issued
// per device.
package devices

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, device *Device) (*Device, error)
	GetByName(ctx context.Context, userName string) (*Device, error)
}
