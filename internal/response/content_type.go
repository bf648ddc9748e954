package response

const (
	ContentTypeHTML  = "text/html"
	ContentTypePlain = "text/plain"

	// FallbackContentType is returned for any extension missing from the
	// tables, so unknown files go out as PNG.
	FallbackContentType = "image/png"
)

var legacyContentTypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"mp4":  "video/mp4",
	"pdf":  "application/pdf",
}

var contentTypes = func() map[string]string {
	m := make(map[string]string, len(legacyContentTypes)+1)
	for ext, ctype := range legacyContentTypes {
		m[ext] = ctype
	}
	m["html"] = ContentTypeHTML
	return m
}()

// ContentType maps a file extension (without the dot) to a MIME type.
// Matching is case-sensitive.
func ContentType(ext string) string {
	return lookup(contentTypes, ext)
}

// LegacyContentType is ContentType without the html entry, as used by the
// legacy path policy.
func LegacyContentType(ext string) string {
	return lookup(legacyContentTypes, ext)
}

func lookup(table map[string]string, ext string) string {
	if ctype, ok := table[ext]; ok {
		return ctype
	}
	return FallbackContentType
}
