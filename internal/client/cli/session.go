package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/harshpatel958/kontax/internal/payload"
)

// Profile shows the stored profile and lets the user edit it field by field.
// Pressing Enter keeps the current value.
func (a *App) Profile(ctx context.Context) error {
	p, err := a.sessionService.Profile(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Println("Your profile (press Enter to keep the current value):")
	if err := a.promptInto(&p.FirstName, "First name"); err != nil {
		return err
	}
	if err := a.promptInto(&p.LastName, "Last name"); err != nil {
		return err
	}
	if err := a.promptInto(&p.Email, "Email"); err != nil {
		return err
	}
	if err := a.promptInto(&p.Phone, "Phone"); err != nil {
		return err
	}
	if err := a.promptInto(&p.Organization, "Organization"); err != nil {
		return err
	}
	if err := a.promptInto(&p.Designation, "Designation"); err != nil {
		return err
	}
	if err := a.promptInto(&p.LinkedIn, "LinkedIn"); err != nil {
		return err
	}

	if err := a.sessionService.SaveProfile(ctx, p); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Println("Profile saved.")
	return nil
}

// Event shows the active event context and lets the user edit or clear it.
func (a *App) Event(ctx context.Context) error {
	e, err := a.sessionService.Event(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Println("Active event (press Enter to keep, 'clear' to drop the event):")
	if e != (payload.Event{}) {
		printField("Title", e.Title)
		printField("Date", e.Date)
		printField("Intent", e.Intent)
		printField("Location", e.Location)
	}

	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	if title == "clear" {
		if err := a.sessionService.ClearEvent(ctx); err != nil {
			log.Printf("error: %v", err)
			return err
		}
		fmt.Println("Event cleared.")
		return nil
	}
	if title != "" {
		e.Title = title
	}

	if err := a.promptInto(&e.Date, "Date"); err != nil {
		return err
	}
	if err := a.promptInto(&e.Intent, "Intent"); err != nil {
		return err
	}
	if err := a.promptInto(&e.Location, "Location"); err != nil {
		return err
	}

	if err := a.sessionService.SaveEvent(ctx, e); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Println("Event saved.")
	return nil
}

// promptInto asks for one field and overwrites *dst only when the user
// typed something.
func (a *App) promptInto(dst *string, prompt string) error {
	if *dst != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, *dst)
	}
	value, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return err
	}
	if value != "" {
		*dst = value
	}
	return nil
}
