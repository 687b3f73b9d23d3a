package manifest

import (
	"html"
	"path"
	"strings"
)

// MediaType is the registered media type of a web app manifest. Use it for
// the Content-Type header and the type attribute of the manifest link element.
const MediaType = "application/manifest+json"

// FileExtension is the conventional file extension of a web app manifest.
const FileExtension = ".webmanifest"

// DefaultMediaType is reported for icons whose extension is unknown or missing.
const DefaultMediaType = "application/octet-stream"

// extensionTypes is keyed by lower-case extension without the leading dot.
var extensionTypes = map[string]string{
	"apng": "image/apng",
	"avif": "image/avif",
	"bmp":  "image/bmp",
	"cur":  "image/x-icon",
	"gif":  "image/gif",
	"heic": "image/heic",
	"heif": "image/heif",
	"ico":  "image/x-icon",
	"jfif": "image/jpeg",
	"jpe":  "image/jpeg",
	"jpeg": "image/jpeg",
	"jpg":  "image/jpeg",
	"jxl":  "image/jxl",
	"pjp":  "image/jpeg",
	"png":  "image/png",
	"svg":  "image/svg+xml",
	"svgz": "image/svg+xml",
	"tif":  "image/tiff",
	"tiff": "image/tiff",
	"webp": "image/webp",

	"json":        "application/json",
	"webmanifest": MediaType,
}

// MediaTypeFor guesses the media type of the file at p from its extension.
//
// p may be a filesystem path, a URL path or a full URL. Only the final path
// segment is considered, and the extension match is case-insensitive. When p
// as a whole has no known extension, anything from the first '?' or '#' on is
// dropped as a query or fragment and the lookup is repeated, so both
// "icon.png?v=2" and "icons/my#1.png" resolve to image/png. Unknown or
// missing extensions yield [DefaultMediaType].
func MediaTypeFor(p string) string {
	if t, ok := lookupExt(p); ok {
		return t
	}
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		if t, ok := lookupExt(p[:i]); ok {
			return t
		}
	}
	return DefaultMediaType
}

func lookupExt(p string) (string, bool) {
	ext := strings.TrimPrefix(path.Ext(path.Base(p)), ".")
	t, ok := extensionTypes[strings.ToLower(ext)]
	return t, ok
}

// LinkTag renders the link element that points a page at its manifest.
// href is HTML-escaped.
//
//	<link rel="manifest" href="/manifest.webmanifest" type="application/manifest+json">
func LinkTag(href string) string {
	return `<link rel="manifest" href="` + html.EscapeString(href) + `" type="` + MediaType + `">`
}
