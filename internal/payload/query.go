package payload

import (
	"net/url"
	"strings"
)

// parseQuery treats everything after the first '?' as an x-www-form-urlencoded
// query string. Known keys map onto the record, unknown keys are ignored and
// missing keys default to "". A payload without '?' is not handled here.
func parseQuery(raw string) (Record, bool) {
	idx := strings.Index(raw, "?")
	if idx == -1 {
		return Record{}, false
	}

	params := map[string]string{}
	for _, pair := range strings.Split(raw[idx+1:], "&") {
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		if rawKey == "" {
			continue
		}
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			continue
		}
		params[key] = value
	}

	return Record{
		FirstName:     params["firstName"],
		LastName:      params["lastName"],
		Phone:         params["phone"],
		Email:         params["email"],
		Organization:  params["organization"],
		Designation:   params["designation"],
		LinkedIn:      params["linkedln"],
		EventTitle:    params["title"],
		EventIntent:   params["intent"],
		EventDate:     params["date"],
		EventLocation: params["location"],
	}, true
}
