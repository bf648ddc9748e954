package static

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shravanasati/pageserver/internal/request"
	"github.com/shravanasati/pageserver/internal/resolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupPages creates a content root in a temp dir and makes it the working
// directory for the rest of the test.
func setupPages(t *testing.T, files map[string][]byte) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, "pages", filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, content, 0644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "pages", "assets"), 0755))
	t.Chdir(dir)
}

func serve(rawPath string, policy resolve.Policy) []byte {
	req := request.Parse([]byte("GET " + rawPath + " HTTP/1.1\r\n\r\n"))
	res := policy(req)
	return Serve(req, res).Bytes()
}

func TestServePage(t *testing.T) {
	setupPages(t, map[string][]byte{
		"index.html":     []byte("Hi"),
		"sub/about.html": []byte("<h1>about</h1>"),
		"sub/bad.html":   {0xff, 0xfe, 0xfd},
	})

	// Test: Index page
	assert.Equal(t, "HTTP/1.1 200 Ok\r\nContent-Type: text/html\r\n\r\nHi\n", string(serve("/", resolve.Unified)))

	// Test: Sub page
	assert.Equal(t, "HTTP/1.1 200 Ok\r\nContent-Type: text/html\r\n\r\n<h1>about</h1>\n", string(serve("/about", resolve.Unified)))

	notFound := "HTTP/1.1 404 Not found\r\nContent-Type: text/plain\r\n\r\nFile not found\n"

	// Test: Missing page
	assert.Equal(t, notFound, string(serve("/missing", resolve.Unified)))

	// Test: Page that is not valid UTF-8
	assert.Equal(t, notFound, string(serve("/bad", resolve.Unified)))
}

func TestServeAsset(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x01}
	setupPages(t, map[string][]byte{
		"assets/cat.png":   png,
		"assets/doc.xyz":   []byte("whatever"),
		"assets/raw.html":  []byte("<p>raw</p>"),
		"assets/clip.mp4":  []byte("mp4data"),
		"assets/empty.gif": {},
	})

	// Test: Known type, exact bytes and length
	expected := append([]byte("HTTP/1.1 200 Ok\r\nContent-Type: image/png\r\nContent-Length: 10\r\n\r\n"), png...)
	assert.Equal(t, expected, serve("/cat.png", resolve.Unified))

	// Test: Unknown extension falls back to image/png
	assert.Equal(t, "HTTP/1.1 200 Ok\r\nContent-Type: image/png\r\nContent-Length: 8\r\n\r\nwhatever", string(serve("/doc.xyz", resolve.Unified)))

	// Test: html asset is served as a page under the unified policy
	assert.Equal(t, "HTTP/1.1 200 Ok\r\nContent-Type: text/html\r\n\r\n<p>raw</p>\n", string(serve("/raw.html", resolve.Unified)))

	// Test: Empty asset
	assert.Equal(t, "HTTP/1.1 200 Ok\r\nContent-Type: image/gif\r\nContent-Length: 0\r\n\r\n", string(serve("/empty.gif", resolve.Unified)))

	// Test: Missing asset
	assert.Equal(t, "HTTP/1.1 404 Not found\r\nContent-Type: text/plain\r\n\r\nFile not found\n", string(serve("/nope.png", resolve.Unified)))
}

func TestServeAssetLegacy(t *testing.T) {
	setupPages(t, map[string][]byte{
		"assets/raw.html": []byte("<p>raw</p>"),
		"assets/clip.mp4": []byte("mp4data"),
	})

	// the doubled slash is harmless on disk
	assert.Equal(t, "HTTP/1.1 200 Ok\r\nContent-Type: video/mp4\r\nContent-Length: 7\r\n\r\nmp4data", string(serve("/clip.mp4", resolve.Legacy)))

	// html assets are binary under the legacy policy
	assert.Equal(t, "HTTP/1.1 200 Ok\r\nContent-Type: image/png\r\nContent-Length: 10\r\n\r\n<p>raw</p>", string(serve("/raw.html", resolve.Legacy)))
}

func TestServeIdempotent(t *testing.T) {
	setupPages(t, map[string][]byte{
		"index.html":     []byte("home"),
		"assets/a.jpg":   []byte("jpegbytes"),
		"sub/about.html": []byte("about"),
	})

	for _, p := range []string{"/", "/about", "/a.jpg", "/missing", "/missing.pdf"} {
		assert.Equal(t, serve(p, resolve.Unified), serve(p, resolve.Unified), p)
	}
}

func TestServeAssetReadFailurePanics(t *testing.T) {
	// a directory opens fine but cannot be read
	setupPages(t, map[string][]byte{
		"assets/dir.png/inner": []byte("x"),
	})

	req := &request.Request{Method: "GET", Path: "/dir.png", Version: "HTTP/1.1"}
	res := resolve.Unified(req)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrReadFile)
	}()
	Serve(req, res)
	t.Fatal("expected panic")
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestMustReadAll(t *testing.T) {
	assert.Equal(t, []byte("abc"), mustReadAll(strings.NewReader("abc"), "ok"))
	assert.PanicsWithError(t, "unable to read file broken: disk on fire", func() {
		mustReadAll(brokenReader{}, "broken")
	})
}
