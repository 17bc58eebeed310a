package payload

import (
	"strings"

	"github.com/harshpatel958/kontax/internal/common"
)

// parsers is the format dispatch table, tried in order; the first parser
// that claims the payload wins. The order is a contract: an anchored vCard
// header beats JSON, and the query-string form is only reached when strict
// JSON parsing fails.
var parsers = []struct {
	name  string
	parse func(string) (Record, bool)
}{
	{"vcard", parseVCard},
	{"json", parseJSON},
	{"query", parseQuery},
}

// Decode maps one scanned string of unknown format to a Record.
//
// Errors: common.ErrEmptyPayload for empty/whitespace input,
// common.ErrUnrecognizedFormat when no parser claims the payload. Callers
// must not stage a record on error; the scan flow resumes.
func Decode(raw string) (Record, error) {
	if strings.TrimSpace(raw) == "" {
		return Record{}, common.ErrEmptyPayload
	}

	for _, p := range parsers {
		if r, ok := p.parse(raw); ok {
			return r, nil
		}
	}

	return Record{}, common.ErrUnrecognizedFormat
}
