// Package resolve maps URL paths to filesystem paths under the content root.
//
// Paths are never cleaned or checked for traversal; "../" segments are kept
// as sent by the client.
package resolve

import (
	"strings"

	"github.com/shravanasati/pageserver/internal/request"
	"github.com/shravanasati/pageserver/internal/response"
)

// ContentRoot is the directory every resolved path lives under. It is
// relative to the working directory of the process.
const ContentRoot = "./pages"

const (
	indexPage   = ContentRoot + "/index.html"
	pagePrefix  = ContentRoot + "/sub"
	pageSuffix  = ".html"
	assetPrefix = ContentRoot + "/assets"
)

// Mode tells the responder how a resolved file should be read and framed.
type Mode int

const (
	// ModeHTML reads the file as text and frames it without a Content-Length.
	ModeHTML Mode = iota
	// ModeBinary reads raw bytes and sends a Content-Length.
	ModeBinary
)

func (m Mode) String() string {
	switch m {
	case ModeHTML:
		return "html"
	case ModeBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of resolving a request.
type Resolution struct {
	Mode        Mode
	ContentType string
}

// Policy rewrites req.Path in place into a filesystem path and reports how
// the file should be served. A policy must be called once per request.
type Policy func(req *request.Request) Resolution

// Unified is the current resolution policy. Asset paths are appended to the
// assets directory as-is, and the content type of the resolved file decides
// between HTML and binary serving.
func Unified(req *request.Request) Resolution {
	ext, ok := Extension(req.Path)
	if !ok {
		req.Path = pagePath(req.Path)
		return Resolution{Mode: ModeHTML, ContentType: response.ContentTypeHTML}
	}

	req.Path = assetPrefix + req.Path

	ext, _ = Extension(req.Path)
	ctype := response.ContentType(ext)
	if ctype == response.ContentTypeHTML {
		return Resolution{Mode: ModeHTML, ContentType: ctype}
	}
	return Resolution{Mode: ModeBinary, ContentType: ctype}
}

// Legacy is the first resolution policy. It inserts an extra slash after the
// assets directory and always serves assets as binary, typed from the URL's
// extension.
func Legacy(req *request.Request) Resolution {
	ext, ok := Extension(req.Path)
	if !ok {
		req.Path = pagePath(req.Path)
		return Resolution{Mode: ModeHTML, ContentType: response.ContentTypeHTML}
	}

	req.Path = assetPrefix + "/" + req.Path
	return Resolution{Mode: ModeBinary, ContentType: response.LegacyContentType(ext)}
}

// pagePath concatenates without adding separators, so "/about" becomes
// "./pages/sub/about.html".
func pagePath(urlPath string) string {
	if urlPath == "/" {
		return indexPage
	}
	return pagePrefix + urlPath + pageSuffix
}

// Extension returns the extension of the last segment of p, without the dot.
// The boolean is false when the segment has no extension: no dot at all, a
// dot-file such as ".env", or the special names "." and "..". A trailing dot
// yields an empty extension that still counts as present.
func Extension(p string) (string, bool) {
	name := strings.TrimRight(p, "/")
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if name == "" || name == "." || name == ".." {
		return "", false
	}

	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 {
		return "", false
	}
	return name[dot+1:], true
}
