package response

import (
	"bytes"
	"fmt"
	"io"

	"github.com/shravanasati/pageserver/internal/headers"
)

// Response is a fully built HTTP response. It is written to the connection
// once and not touched afterwards.
type Response struct {
	Version    string
	StatusCode StatusCode
	Headers    *headers.Headers
	Body       []byte
}

func newResponse(version string, code StatusCode, contentType string, body []byte) *Response {
	hs := headers.NewHeaders()
	hs.Add("Content-Type", contentType)
	return &Response{
		Version:    version,
		StatusCode: code,
		Headers:    hs,
		Body:       body,
	}
}

// Write serializes the response to w.
func (r *Response) Write(w io.Writer) error {
	rw := NewResponseWriter(w, r.Version)
	if err := rw.WriteStatusLine(r.StatusCode); err != nil {
		return err
	}
	if err := rw.WriteHeaders(r.Headers); err != nil {
		return err
	}
	return rw.WriteBody(r.Body)
}

// Bytes returns the serialized response.
func (r *Response) Bytes() []byte {
	var b bytes.Buffer
	// writes to a bytes.Buffer cannot fail
	_ = r.Write(&b)
	return b.Bytes()
}

// ResponseWriter writes the parts of a response in order: status line,
// headers, body.
type ResponseWriter struct {
	conn    io.Writer
	version string
	state   responseState
}

// NewResponseWriter returns a writer whose status line echoes version as-is.
func NewResponseWriter(conn io.Writer, version string) *ResponseWriter {
	return &ResponseWriter{conn: conn, version: version, state: newResponseState()}
}

func (rw *ResponseWriter) WriteStatusLine(statusCode StatusCode) error {
	if rw.state != stateStatusLine {
		return ErrStatusLineAlreadyWritten
	}
	_, err := fmt.Fprintf(rw.conn, "%s %d %s\r\n", rw.version, statusCode, GetStatusReason(statusCode))
	if err != nil {
		return err
	}

	rw.state = rw.state.advance()
	return nil
}

func (rw *ResponseWriter) WriteHeaders(h *headers.Headers) error {
	if rw.state != stateHeaders {
		return ErrHeadersAlreadyWritten
	}
	for k, v := range h.All() {
		if _, err := fmt.Fprintf(rw.conn, "%s: %s\r\n", k, v); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(rw.conn, "\r\n"); err != nil {
		return err
	}
	rw.state = rw.state.advance()
	return nil
}

func (rw *ResponseWriter) WriteBody(b []byte) error {
	if rw.state != stateBody {
		return ErrNoBodyState
	}
	if _, err := rw.conn.Write(b); err != nil {
		return err
	}
	rw.state = rw.state.advance()
	return nil
}
