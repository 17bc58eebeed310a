package cli

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/harshpatel958/kontax/internal/filex"
	"github.com/harshpatel958/kontax/internal/payload"
	qrcode "github.com/skip2/go-qrcode"
)

// writeQRFn is a test seam for PNG rendering.
var writeQRFn = qrcode.WriteFile

// QR encodes the user's profile and the active event context into an
// outbound payload and renders it as a PNG. Online, the payload is a
// landing URL; offline it is vCard text that imports without connectivity.
func (a *App) QR(ctx context.Context) error {
	profile, err := a.sessionService.Profile(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if profile == (payload.Profile{}) {
		fmt.Println("Your profile is empty. Run 'profile' first.")
		return nil
	}

	event, err := a.sessionService.Event(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	data := payload.Encode(profile, event, a.currentMode() == ModeOnline, a.config.QRBaseURL)

	dir, err := filex.EnsureSubDir(a.dataDir, "qr")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	file := filepath.Join(dir, fmt.Sprintf("kontax-%s.png", time.Now().Format("20060102-150405")))
	if err := writeQRFn(data, qrcode.Medium, 512, file); err != nil {
		log.Printf("error rendering QR: %v", err)
		return err
	}

	fmt.Println("Payload:")
	fmt.Println(data)
	fmt.Printf("QR image saved to: %s\n", file)
	return nil
}
