package response

// StatusCode defines the HTTP status codes this server sends.
type StatusCode int

const (
	StatusOK       StatusCode = 200
	StatusNotFound StatusCode = 404
)

// Reason phrases are spelled the way clients of this server have always
// received them, not as registered with IANA.
var reasonPhrases = map[StatusCode]string{
	StatusOK:       "Ok",
	StatusNotFound: "Not found",
}

// GetStatusReason returns the reason phrase for the given status code.
func GetStatusReason(s StatusCode) string {
	return reasonPhrases[s]
}
