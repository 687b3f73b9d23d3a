package manifest

// Icon is an entry of the manifest's icons member.
//
// Example output:
//
//	{"src": "images/touch/homescreen48.png", "sizes": "48x48", "type": "image/png"}
type Icon struct {
	src       string
	sizes     string
	mediaType string
}

// NewIcon creates an Icon for the image at src. sizes uses the WIDTHxHEIGHT
// form, space-separated for multi-resolution images (e.g. "16x16 32x32"), or
// the keyword "any". Neither value is validated. The media type is inferred
// from the extension of src via [MediaTypeFor].
func NewIcon(src, sizes string) Icon {
	return Icon{
		src:       src,
		sizes:     sizes,
		mediaType: MediaTypeFor(src),
	}
}

// Src returns the image URL or path.
func (i Icon) Src() string { return i.src }

// Sizes returns the sizes hint.
func (i Icon) Sizes() string { return i.sizes }

// Type returns the inferred media type, serialized as "type".
func (i Icon) Type() string { return i.mediaType }

// MarshalJSON encodes the icon as {"src", "sizes", "type"}.
// json.Marshal escapes HTML characters in the result.
func (i Icon) MarshalJSON() ([]byte, error) {
	return marshalCompact(i.wire())
}

type iconJSON struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

func (i Icon) wire() iconJSON {
	return iconJSON{Src: i.src, Sizes: i.sizes, Type: i.mediaType}
}
