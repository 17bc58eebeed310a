// Package payload implements the QR payload codec: decoding a scanned
// string of unknown format (vCard, JSON or URL query) into a normalized
// contact record, and encoding the local user's profile and event context
// into an outbound payload. Everything here is pure; no I/O.
package payload

// Record is the normalized result of decoding one scanned payload.
// Every field is a plain string and defaults to "" when the source omits
// it, so consumers never need nil checks. Nothing is validated at decode
// time; validation happens on the outbound form only.
type Record struct {
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Organization  string
	Designation   string
	LinkedIn      string
	EventTitle    string
	EventDate     string
	EventLocation string
	EventIntent   string
}

// Profile is the local user's own contact details, the outbound half of an
// exchange.
type Profile struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Organization string
	Designation  string
	LinkedIn     string
}

// Event is the active event context copied into outgoing payloads.
type Event struct {
	Title    string
	Date     string
	Intent   string
	Location string
}

// queryKeys lists the query-string keys of the URL payload form, in the
// order the encoder emits them. The "linkedln" spelling is part of the
// wire contract and must not be corrected.
var queryKeys = []string{
	"firstName", "lastName", "phone", "email",
	"organization", "designation", "linkedln",
	"title", "intent", "date", "location",
}
