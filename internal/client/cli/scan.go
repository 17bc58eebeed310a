package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/harshpatel958/kontax/internal/common"
	"github.com/harshpatel958/kontax/internal/payload"
)

// Scan acquires a payload (pasted, or read from a file when the user enters
// a path), decodes it and stages the contact for annotation via 'save'.
func (a *App) Scan(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter payload file path (leave empty to paste)", os.Stdout)
	if err != nil {
		return err
	}

	var raw string
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}
		raw = string(data)
	} else {
		raw, err = GetMultiline(a.reader, "Paste the payload:", os.Stdout)
		if err != nil {
			return err
		}
	}

	res, err := a.scanService.Ingest(ctx, raw)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrEmptyPayload):
			fmt.Println("Nothing to decode: the payload is empty.")
		case errors.Is(err, common.ErrUnrecognizedFormat):
			fmt.Println("Could not recognize the payload format.")
		default:
			log.Printf("error: %v", err)
		}
		return err
	}

	a.staged = &res.Record
	a.stagedID = res.ID
	a.stagedAnn = nil

	fmt.Println("Decoded contact:")
	printRecord(res.Record)
	fmt.Println("Type 'save' to annotate and keep it.")
	return nil
}

func printRecord(rec payload.Record) {
	printField("First name", rec.FirstName)
	printField("Last name", rec.LastName)
	printField("Email", rec.Email)
	printField("Phone", rec.Phone)
	printField("Organization", rec.Organization)
	printField("Designation", rec.Designation)
	printField("LinkedIn", rec.LinkedIn)
	printField("Event", rec.EventTitle)
	printField("Event date", rec.EventDate)
	printField("Event location", rec.EventLocation)
	printField("Event intent", rec.EventIntent)
}

func printField(name, value string) {
	if value != "" {
		fmt.Printf("  %s: %s\n", name, value)
	}
}
