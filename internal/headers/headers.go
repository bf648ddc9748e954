package headers

import (
	"iter"
	"regexp"
	"strings"
)

// https://datatracker.ietf.org/doc/html/rfc9110#name-tokens
var fieldNameRegex = regexp.MustCompile(`^[a-zA-Z0-9!#$%&'*\+\-.^_\x60\|~]+$`)

type field struct {
	name  string
	value string
}

// Headers is an ordered collection of response header fields. Lookups are
// case-insensitive, but fields are written out with the casing and in the
// order they were first added.
type Headers struct {
	fields []field
	index  map[string]int
}

func isValidFieldName(key string) bool {
	return fieldNameRegex.MatchString(key)
}

func validHeaderValueByte(c byte) bool {
	switch {
	case c == 0x09: // HTAB
		return true
	case c == 0x20: // SP
		return true
	case 0x21 <= c && c <= 0x7E: // VCHAR
		return true
	case c >= 0x80: // obs-text
		return true
	}
	return false
}

func isValidFieldValue(val string) bool {
	for i := 0; i < len(val); i++ {
		if !validHeaderValueByte(val[i]) {
			return false
		}
	}
	return true
}

func normalizeKey(key string) string {
	return strings.ToLower(key)
}

// Add adds a new header. If the header already exists, the new value is appended to the existing value, separated by a comma.
func (h *Headers) Add(key, value string) {
	if !isValidFieldName(key) || !isValidFieldValue(value) {
		// drop invalid headers to prevent response splitting
		return
	}

	norm := normalizeKey(key)
	if i, ok := h.index[norm]; ok {
		h.fields[i].value += ", " + value
		return
	}
	h.index[norm] = len(h.fields)
	h.fields = append(h.fields, field{name: key, value: value})
}

// Set replaces any existing value of the header.
func (h *Headers) Set(key, value string) {
	h.Remove(key)
	h.Add(key, value)
}

// Get returns the value of a header.
func (h *Headers) Get(key string) string {
	if i, ok := h.index[normalizeKey(key)]; ok {
		return h.fields[i].value
	}
	return ""
}

// Remove removes a header.
func (h *Headers) Remove(key string) {
	i, ok := h.index[normalizeKey(key)]
	if !ok {
		return
	}
	h.fields = append(h.fields[:i], h.fields[i+1:]...)
	h.reindex()
}

func (h *Headers) reindex() {
	clear(h.index)
	for i, f := range h.fields {
		h.index[normalizeKey(f.name)] = i
	}
}

// All returns an iterator over all headers in insertion order.
func (h *Headers) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, f := range h.fields {
			if !yield(f.name, f.value) {
				return
			}
		}
	}
}

// Size returns the number of headers.
func (h *Headers) Size() int {
	return len(h.fields)
}

// NewHeaders creates a new Headers object.
func NewHeaders() *Headers {
	return &Headers{
		index: map[string]int{},
	}
}
