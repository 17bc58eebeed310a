package models

import (
	"testing"

	"github.com/harshpatel958/kontax/internal/common"
	"github.com/harshpatel958/kontax/internal/payload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCard_ValidationGate(t *testing.T) {
	_, err := BuildCard(payload.Record{Phone: "555"}, Annotation{}, payload.Event{})
	assert.ErrorIs(t, err, common.ErrIncompleteContact)

	_, err = BuildCard(payload.Record{FirstName: "   ", LastName: "\t", Email: " "}, Annotation{}, payload.Event{})
	assert.ErrorIs(t, err, common.ErrIncompleteContact, "whitespace-only names do not pass the gate")

	for _, rec := range []payload.Record{
		{FirstName: "Jane"},
		{LastName: "Doe"},
		{Email: "jane@x.com"},
	} {
		_, err := BuildCard(rec, Annotation{}, payload.Event{})
		assert.NoError(t, err, "any one identity field is enough: %+v", rec)
	}
}

func TestBuildCard_CopiesRecordAndAnnotation(t *testing.T) {
	rec := payload.Record{
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        "jane@x.com",
		Phone:        "555",
		Organization: "Acme",
		Designation:  "CTO",
		LinkedIn:     "https://linkedin.com/in/jane",
		EventTitle:   "Demo Day",
	}
	ann := Annotation{
		Notes:      "met at the booth",
		Tags:       "Potential Hire, Follow-up Required",
		YourIntent: "hiring",
		VoiceNote:  "/data/voicenotes/abc.m4a",
	}

	c, err := BuildCard(rec, ann, payload.Event{})
	require.NoError(t, err)

	assert.Equal(t, "Jane", c.FirstName)
	assert.Equal(t, "met at the booth", c.Notes)
	assert.Equal(t, []string{"Potential Hire", "Follow-up Required"}, c.Tags)
	assert.Equal(t, "hiring", c.YourIntent)
	assert.Equal(t, "/data/voicenotes/abc.m4a", c.VoiceNote)
	assert.Equal(t, int64(0), c.ID, "id is assigned by the store, not the merge")
}

func TestBuildCard_EventContextFillsGapsOnly(t *testing.T) {
	rec := payload.Record{FirstName: "Jane", EventTitle: "Scanned Title"}
	event := payload.Event{Title: "Session Title", Date: "2024-12-01", Intent: "networking", Location: "Hall A"}

	c, err := BuildCard(rec, Annotation{}, event)
	require.NoError(t, err)

	assert.Equal(t, "Scanned Title", c.EventTitle, "scanned value wins over session context")
	assert.Equal(t, "2024-12-01", c.EventDate)
	assert.Equal(t, "networking", c.EventIntent)
	assert.Equal(t, "Hall A", c.EventLocation)
}

func TestBuildCard_CombinesTypedAndPickedTags(t *testing.T) {
	c, err := BuildCard(
		payload.Record{FirstName: "J"},
		Annotation{Tags: "a, b", TagList: []string{" Explore Later ", ""}},
		payload.Event{},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "Explore Later"}, c.Tags)
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, NormalizeTags("a, b ,,c"))
	assert.Nil(t, NormalizeTags(""))
	assert.Nil(t, NormalizeTags(" , ,"))
	assert.Equal(t, []string{"A", "a", "A"}, NormalizeTags("A,a,A"), "duplicates and case preserved")
}

func TestNormalizeTags_Idempotent(t *testing.T) {
	for _, in := range []string{"a, b ,,c", "", "x", " Potential Hire ,Explore Later"} {
		once := NormalizeTags(in)
		twice := NormalizeTags(JoinTags(once))
		assert.Equal(t, once, twice, "in=%q", in)
	}
}

func TestJoinTags_RoundTrip(t *testing.T) {
	tags := []string{"Potential Hire", "Explore Later", "Potential Hire"}
	assert.Equal(t, tags, NormalizeTags(JoinTags(tags)), "storage round trip keeps order and duplicates")
}

func TestCard_FullName(t *testing.T) {
	assert.Equal(t, "Jane Doe", Card{FirstName: "Jane", LastName: "Doe"}.FullName())
	assert.Equal(t, "Jane", Card{FirstName: "Jane"}.FullName())
	assert.Equal(t, "Doe", Card{LastName: "Doe"}.FullName())
	assert.Equal(t, "", Card{}.FullName())
}
