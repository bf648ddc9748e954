package request

import (
	"bufio"
	"bytes"
	"strings"
)

const (
	DefaultMethod  = "GET"
	DefaultPath    = "/"
	DefaultVersion = "HTTP/1.1"
)

// Request holds the parts of the request line this server cares about.
// Path starts out as the URL path and is rewritten to a filesystem path by
// the resolver.
type Request struct {
	Method  string
	Path    string
	Version string
}

// Parse builds a Request from the raw bytes read off a connection. Only the
// first line is looked at; headers and body are ignored. Parse never fails:
// any token that is missing falls back to its default.
func Parse(raw []byte) *Request {
	fields := strings.Fields(firstLine(raw))

	return &Request{
		Method:  tokenOr(fields, 0, DefaultMethod),
		Path:    tokenOr(fields, 1, DefaultPath),
		Version: tokenOr(fields, 2, DefaultVersion),
	}
}

func firstLine(raw []byte) string {
	raw = bytes.ToValidUTF8(raw, []byte("�"))

	scanner := bufio.NewScanner(bytes.NewReader(raw))
	scanner.Buffer(make([]byte, 0, len(raw)+1), len(raw)+1)
	scanner.Split(bufio.ScanLines)
	if !scanner.Scan() {
		return ""
	}
	return scanner.Text()
}

func tokenOr(fields []string, i int, fallback string) string {
	if i < len(fields) {
		return fields[i]
	}
	return fallback
}
