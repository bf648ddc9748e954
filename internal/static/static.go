// Package static reads resolved files and frames them as responses.
package static

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/shravanasati/pageserver/internal/request"
	"github.com/shravanasati/pageserver/internal/resolve"
	"github.com/shravanasati/pageserver/internal/response"
)

// Serve builds the response for a request whose Path has already been
// rewritten by a resolve.Policy.
//
// Files that cannot be read as pages, or cannot be opened as assets, produce
// a 404. An asset that opens but fails while being read panics with an error
// wrapping ErrReadFile; the caller is expected to drop the connection.
func Serve(req *request.Request, res resolve.Resolution) *response.Response {
	if res.Mode == resolve.ModeHTML {
		return servePage(req)
	}
	return serveAsset(req, res.ContentType)
}

func servePage(req *request.Request) *response.Response {
	content, err := os.ReadFile(req.Path)
	if err != nil || !utf8.Valid(content) {
		return response.NewNotFoundResponse(req.Version)
	}
	return response.NewHTMLResponse(req.Version, string(content))
}

func serveAsset(req *request.Request, contentType string) *response.Response {
	f, err := os.Open(req.Path)
	if err != nil {
		return response.NewNotFoundResponse(req.Version)
	}
	defer f.Close()

	return response.NewBinaryResponse(req.Version, contentType, mustReadAll(f, req.Path))
}

func mustReadAll(r io.Reader, name string) []byte {
	data, err := io.ReadAll(r)
	if err != nil {
		panic(fmt.Errorf("%w %s: %w", ErrReadFile, name, err))
	}
	return data
}
