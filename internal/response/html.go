package response

// NewHTMLResponse frames an HTML page. No Content-Length is sent and a
// newline is appended to the page.
func NewHTMLResponse(version, body string) *Response {
	return newResponse(version, StatusOK, ContentTypeHTML, []byte(body+"\n"))
}
