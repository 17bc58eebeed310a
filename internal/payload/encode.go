package payload

import (
	"net/url"
	"strings"
)

// DefaultBaseURL is the landing page the URL payload form points at when no
// other base is configured.
const DefaultBaseURL = "http://harshpatel958.github.io/kontax-landing/"

// Encode serializes the user's profile and event context into one outbound
// payload string. When online, the payload is a landing URL whose query
// parameters carry the fields; offline it is vCard 3.0 text that any phone
// contact app can import without connectivity. Encoding cannot fail.
func Encode(p Profile, e Event, online bool, baseURL string) string {
	if online {
		return EncodeURL(p, e, baseURL)
	}
	return EncodeVCard(p, e)
}

// EncodeURL appends every non-empty profile and event field to baseURL as a
// query parameter, in the fixed queryKeys order. Empty fields are omitted
// entirely; the decoder defaults missing keys to "".
func EncodeURL(p Profile, e Event, baseURL string) string {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	values := map[string]string{
		"firstName":    p.FirstName,
		"lastName":     p.LastName,
		"phone":        p.Phone,
		"email":        p.Email,
		"organization": p.Organization,
		"designation":  p.Designation,
		"linkedln":     p.LinkedIn,
		"title":        e.Title,
		"intent":       e.Intent,
		"date":         e.Date,
		"location":     e.Location,
	}

	var pairs []string
	for _, key := range queryKeys {
		if v := values[key]; v != "" {
			pairs = append(pairs, url.QueryEscape(key)+"="+url.QueryEscape(v))
		}
	}

	if len(pairs) == 0 {
		return baseURL
	}
	return baseURL + "?" + strings.Join(pairs, "&")
}

// EncodeVCard renders vCard 3.0 text. The N: line is always present (family
// name first); every other line appears only when its field is non-empty.
// Line order is fixed because some vCard consumers display fields in source
// order.
func EncodeVCard(p Profile, e Event) string {
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:" + p.LastName + ";" + p.FirstName + ";;;",
	}

	optional := []struct {
		prefix string
		value  string
	}{
		{"TEL;TYPE=work,VOICE:", p.Phone},
		{"EMAIL:", p.Email},
		{"ORG:", p.Organization},
		{"TITLE:", p.Designation},
		{"URL:", p.LinkedIn},
		{"X-EVENT-TITLE:", e.Title},
		{"X-EVENT-DATE:", e.Date},
		{"X-EVENT-INTENT:", e.Intent},
		{"X-EVENT-LOCATION:", e.Location},
	}
	for _, l := range optional {
		if l.value != "" {
			lines = append(lines, l.prefix+l.value)
		}
	}

	lines = append(lines, "END:VCARD")
	return strings.Join(lines, "\n")
}
