package models

import (
	"strings"

	"github.com/harshpatel958/kontax/internal/common"
	"github.com/harshpatel958/kontax/internal/payload"
)

// Annotation carries the user-entered fields added to a staged record
// before it becomes a Card. Tags holds the raw comma-separated input;
// TagList holds picker selections. Both may be set; typed tags come first.
type Annotation struct {
	Notes      string
	Tags       string
	TagList    []string
	YourIntent string
	VoiceNote  string
}

// BuildCard combines a staged scan record, the user's annotation and the
// active event context into a Card ready for storage. The event context
// only fills event fields the scanned payload left empty.
//
// The single validation gate: at least one of first name, last name or
// email must be non-blank after trimming, otherwise
// common.ErrIncompleteContact is returned and nothing should be saved.
func BuildCard(rec payload.Record, ann Annotation, event payload.Event) (Card, error) {
	if strings.TrimSpace(rec.FirstName) == "" &&
		strings.TrimSpace(rec.LastName) == "" &&
		strings.TrimSpace(rec.Email) == "" {
		return Card{}, common.ErrIncompleteContact
	}

	tags := NormalizeTags(ann.Tags)
	tags = append(tags, NormalizeTagList(ann.TagList)...)

	c := Card{
		FirstName:     rec.FirstName,
		LastName:      rec.LastName,
		Email:         rec.Email,
		Phone:         rec.Phone,
		Organization:  rec.Organization,
		Designation:   rec.Designation,
		LinkedIn:      rec.LinkedIn,
		EventTitle:    rec.EventTitle,
		EventDate:     rec.EventDate,
		EventLocation: rec.EventLocation,
		EventIntent:   rec.EventIntent,
		Notes:         ann.Notes,
		Tags:          tags,
		YourIntent:    ann.YourIntent,
		VoiceNote:     ann.VoiceNote,
	}

	if c.EventTitle == "" {
		c.EventTitle = event.Title
	}
	if c.EventDate == "" {
		c.EventDate = event.Date
	}
	if c.EventLocation == "" {
		c.EventLocation = event.Location
	}
	if c.EventIntent == "" {
		c.EventIntent = event.Intent
	}

	return c, nil
}
