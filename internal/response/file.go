package response

import "strconv"

// NewBinaryResponse frames raw file contents with their length. The body is
// sent unmodified.
func NewBinaryResponse(version, contentType string, data []byte) *Response {
	r := newResponse(version, StatusOK, contentType, data)
	r.Headers.Add("Content-Length", strconv.Itoa(len(data)))
	return r
}
