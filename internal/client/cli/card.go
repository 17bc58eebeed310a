package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/harshpatel958/kontax/internal/client/models"
	"github.com/harshpatel958/kontax/internal/common"
)

// Save annotates the staged contact and persists it as a card. The event
// context fills any event fields the payload did not carry. When online and
// logged in, the user may attach a voice note, which is uploaded right away.
// A failed save keeps the annotation next to the staged record, so the next
// attempt offers the previous answers back instead of re-prompting from
// scratch (and never re-uploads an already uploaded voice note).
func (a *App) Save(ctx context.Context) error {
	if a.staged == nil {
		fmt.Println("Nothing staged. Run 'scan' first.")
		return nil
	}

	var ann models.Annotation
	if a.stagedAnn != nil {
		ann = *a.stagedAnn
		fmt.Println("Retrying the last save (press Enter to keep the previous answers).")
	}

	notes, err := GetMultiline(a.reader, "Notes:", os.Stdout)
	if err != nil {
		return err
	}
	if notes != "" {
		ann.Notes = notes
	}
	if err := a.promptInto(&ann.Tags, "Tags (comma separated)"); err != nil {
		return err
	}
	if err := a.promptInto(&ann.YourIntent, "Your intent"); err != nil {
		return err
	}

	if ann.VoiceNote == "" && a.currentMode() == ModeOnline && a.isLoggedIn() {
		path, err := getSimpleText(a.reader, "Voice note file (leave empty to skip)", os.Stdout)
		if err != nil {
			return err
		}
		if path != "" {
			key, err := a.publishService.UploadVoiceNote(ctx, path)
			if err != nil {
				log.Printf("voice note upload failed: %v", err)
			} else {
				ann.VoiceNote = key
			}
		}
	}

	event, err := a.sessionService.Event(ctx)
	if err != nil {
		a.stagedAnn = &ann
		log.Printf("error: %v", err)
		return err
	}

	card, err := a.cardService.Save(ctx, *a.staged, ann, event)
	if err != nil {
		a.stagedAnn = &ann
		if errors.Is(err, common.ErrIncompleteContact) {
			fmt.Println("Cannot save: the contact needs at least a name or an email.")
			return err
		}
		log.Printf("error: %v", err)
		return err
	}

	a.staged = nil
	a.stagedID = 0
	a.stagedAnn = nil

	fmt.Printf("Saved card %d (%s)\n", card.ID, card.FullName())
	return nil
}

// List prints a one-line summary for each saved card, oldest first.
func (a *App) List(ctx context.Context) error {
	cards, err := a.cardService.List(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(cards) == 0 {
		fmt.Println("No cards saved yet.")
		return nil
	}

	for _, c := range cards {
		line := fmt.Sprintf("%d. %s", c.ID, c.FullName())
		if c.Organization != "" {
			line += " | " + c.Organization
		}
		if c.EventTitle != "" {
			line += " | " + c.EventTitle
		}
		if len(c.Tags) > 0 {
			line += " [" + strings.Join(c.Tags, ", ") + "]"
		}
		fmt.Println(line)
	}
	return nil
}

// Show fetches and displays a single card by ID, including the annotation.
func (a *App) Show(ctx context.Context) error {
	id, err := a.promptForID("Enter card id to show")
	if err != nil {
		return err
	}

	card, err := a.cardService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Println("No such card.")
			return err
		}
		log.Printf("error: %v", err)
		return err
	}

	fmt.Println(card.FullName())
	printRecord(card.Record())
	printField("Notes", card.Notes)
	printField("Tags", strings.Join(card.Tags, ", "))
	printField("Your intent", card.YourIntent)
	printField("Voice note", card.VoiceNote)

	if card.VoiceNote != "" && a.currentMode() == ModeOnline && a.isLoggedIn() {
		url, err := a.publishService.VoiceNoteURL(ctx, card.VoiceNote)
		if err != nil {
			log.Printf("voice note playback url: %v", err)
		} else {
			printField("Listen", url)
		}
	}
	return nil
}

// Delete removes a card by its identifier, prompting the user for the ID.
// Deleting an unknown id is a silent no-op.
func (a *App) Delete(ctx context.Context) error {
	id, err := a.promptForID("Enter card id to delete")
	if err != nil {
		return err
	}

	if err := a.cardService.Delete(ctx, id); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Println("Deleted.")
	return nil
}

func (a *App) promptForID(prompt string) (int64, error) {
	raw, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Println("Expected a numeric id.")
		return 0, err
	}
	return id, nil
}
