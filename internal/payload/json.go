package payload

import "encoding/json"

// jsonPayload mirrors the legacy JSON producer's shape. Contact names may
// arrive flat or nested under "name", and phone may be a bare string or a
// {type, number} object; both variants are collapsed into the flat Record
// immediately after parse so nothing downstream sees the union.
type jsonPayload struct {
	Name *struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	} `json:"name"`
	FirstName    string          `json:"firstName"`
	LastName     string          `json:"lastName"`
	Email        string          `json:"email"`
	Phone        json.RawMessage `json:"phone"`
	Organization string          `json:"organization"`
	Designation  string          `json:"designation"`
	LinkedIn     string          `json:"linkedln"`
	Title        string          `json:"title"`
	Date         string          `json:"date"`
	Intent       string          `json:"intent"`
	Location     string          `json:"location"`
}

// parseJSON attempts a strict parse of the whole payload. A payload that is
// not a JSON object (including valid JSON scalars) reports false so the
// dispatcher can fall through to the query-string parser.
func parseJSON(raw string) (Record, bool) {
	var p jsonPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Record{}, false
	}

	r := Record{
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		Email:         p.Email,
		Phone:         phoneString(p.Phone),
		Organization:  p.Organization,
		Designation:   p.Designation,
		LinkedIn:      p.LinkedIn,
		EventTitle:    p.Title,
		EventDate:     p.Date,
		EventLocation: p.Location,
		EventIntent:   p.Intent,
	}

	// Top-level names win when non-empty; the nested form fills the gaps.
	if p.Name != nil {
		if r.FirstName == "" {
			r.FirstName = p.Name.FirstName
		}
		if r.LastName == "" {
			r.LastName = p.Name.LastName
		}
	}

	return r, true
}

// phoneString collapses the phone union: a JSON string is used as-is, an
// object contributes its "number" member, anything else yields "".
func phoneString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var obj struct {
		Type   []string `json:"type"`
		Number string   `json:"number"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Number
	}

	return ""
}
