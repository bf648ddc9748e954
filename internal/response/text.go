package response

const notFoundBody = "File not found\n"

// NewNotFoundResponse is sent whenever the resolved file cannot be read.
func NewNotFoundResponse(version string) *Response {
	return newResponse(version, StatusNotFound, ContentTypePlain, []byte(notFoundBody))
}
