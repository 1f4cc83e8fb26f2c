package pipeline

import "strings"

// NormalizeAddress reduces a raw address to the query string sent to the
// geocoder: the portion before the first comma, trimmed of surrounding
// whitespace. Unit and apartment detail after the comma only degrades
// the address search. An empty result means the row has no usable
// address and must not reach the geocoder.
func NormalizeAddress(raw string) string {
	head, _, _ := strings.Cut(raw, ",")
	return strings.TrimSpace(head)
}
