package payload

import (
	"strings"
)

const vcardPrefix = "BEGIN:VCARD"

func isVCard(raw string) bool {
	return strings.HasPrefix(raw, vcardPrefix)
}

// parseVCard claims payloads whose first bytes are the vCard header
// (case-sensitive, anchored), then walks them line by line. Every
// recognized property is independently optional, and a repeated property
// overwrites the earlier value. Unrecognized lines are skipped so future
// extension lines do not break old clients.
//
// The N: property lists family name before given name (N:<last>;<first>;;;),
// which is preserved exactly: the first token becomes LastName, the second
// FirstName.
func parseVCard(raw string) (Record, bool) {
	if !isVCard(raw) {
		return Record{}, false
	}

	var r Record

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")

		switch {
		case strings.HasPrefix(line, "N:"):
			parts := strings.Split(line[len("N:"):], ";")
			r.LastName = parts[0]
			if len(parts) > 1 {
				r.FirstName = parts[1]
			}
		case strings.HasPrefix(line, "TEL"):
			// TYPE attributes (TEL;TYPE=work,VOICE:...) are recognized but
			// the flat record keeps the number only.
			if _, rest, ok := strings.Cut(line, ":"); ok {
				r.Phone = rest
			}
		case strings.HasPrefix(line, "EMAIL:"):
			r.Email = line[len("EMAIL:"):]
		case strings.HasPrefix(line, "ORG:"):
			r.Organization = line[len("ORG:"):]
		case strings.HasPrefix(line, "TITLE:"):
			r.Designation = line[len("TITLE:"):]
		case strings.HasPrefix(line, "URL:"):
			url := line[len("URL:"):]
			if !strings.HasPrefix(url, "http") {
				url = "http://" + url
			}
			r.LinkedIn = url
		case strings.HasPrefix(line, "X-EVENT-TITLE:"):
			r.EventTitle = line[len("X-EVENT-TITLE:"):]
		case strings.HasPrefix(line, "X-EVENT-DATE:"):
			r.EventDate = line[len("X-EVENT-DATE:"):]
		case strings.HasPrefix(line, "X-EVENT-INTENT:"):
			r.EventIntent = line[len("X-EVENT-INTENT:"):]
		case strings.HasPrefix(line, "X-EVENT-LOCATION:"):
			r.EventLocation = line[len("X-EVENT-LOCATION:"):]
		}
	}

	return r, true
}
