package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/matzehuels/webmanifest/pkg/errors"
)

// MaxShortNameLength is the longest short_name, in bytes, that launchers are
// expected to display without truncation.
const MaxShortNameLength = 12

// Manifest builds a web app manifest.
//
// A Manifest is a value: every setter returns an updated copy and leaves the
// receiver untouched, so a partially configured Manifest can be shared as a
// template and extended independently. Scalars follow last-write-wins; Icon
// and Related append.
//
// The zero value is a manifest with an empty name; use [New].
type Manifest struct {
	name                      string
	shortName                 *string
	startURL                  *string
	display                   DisplayMode
	backgroundColor           *string
	description               *string
	dir                       Direction
	orientation               Orientation
	lang                      *string
	scope                     *string
	themeColor                *string
	preferRelatedApplications *bool
	icons                     []Icon
	related                   []Related
}

// New starts a manifest with the required name member set and every other
// member unset.
func New(name string) Manifest {
	return Manifest{name: name}
}

// Name returns the name member.
func (m Manifest) Name() string { return m.name }

// Icons returns a copy of the icons added so far, in insertion order.
func (m Manifest) Icons() []Icon { return slices.Clone(m.icons) }

// RelatedApplications returns a copy of the related applications added so
// far, in insertion order.
func (m Manifest) RelatedApplications() []Related { return slices.Clone(m.related) }

// ShortName sets short_name, the label used where there is not enough space
// for the full name.
//
// The value should fit in [MaxShortNameLength] bytes. In default builds a
// longer value panics so the mistake surfaces during development; building
// with -tags release removes the check and the value is kept verbatim.
func (m Manifest) ShortName(v string) Manifest {
	if assertions && len(v) > MaxShortNameLength {
		panic(fmt.Sprintf("manifest: short_name %q is %d bytes, max %d", v, len(v), MaxShortNameLength))
	}
	m.shortName = &v
	return m
}

// StartURL sets start_url, the URL loaded when the user launches the app.
func (m Manifest) StartURL(v string) Manifest {
	m.startURL = &v
	return m
}

// DisplayMode sets display. Passing the zero DisplayMode unsets it.
func (m Manifest) DisplayMode(v DisplayMode) Manifest {
	m.display = v
	return m
}

// BgColor sets background_color, shown before the stylesheet has loaded.
// The color is not validated.
func (m Manifest) BgColor(v string) Manifest {
	m.backgroundColor = &v
	return m
}

// ThemeColor sets theme_color, the default theme color for the application.
func (m Manifest) ThemeColor(v string) Manifest {
	m.themeColor = &v
	return m
}

// Description sets description.
func (m Manifest) Description(v string) Manifest {
	m.description = &v
	return m
}

// Direction sets dir, the primary text direction for name, short_name and
// description. Passing the zero Direction unsets it.
func (m Manifest) Direction(v Direction) Manifest {
	m.dir = v
	return m
}

// Orientation sets orientation. Passing the zero Orientation unsets it.
func (m Manifest) Orientation(v Orientation) Manifest {
	m.orientation = v
	return m
}

// Lang sets lang, a single BCP 47 language tag for name and short_name.
// Together with dir it lets user agents display right-to-left languages
// correctly. The tag is not validated.
func (m Manifest) Lang(v string) Manifest {
	m.lang = &v
	return m
}

// Scope sets scope, the navigation scope of the application.
func (m Manifest) Scope(v string) Manifest {
	m.scope = &v
	return m
}

// PreferRelatedApplications sets prefer_related_applications. When true, user
// agents should offer one of the related applications instead of the website.
func (m Manifest) PreferRelatedApplications(v bool) Manifest {
	m.preferRelatedApplications = &v
	return m
}

// Icon appends an icon.
func (m Manifest) Icon(v Icon) Manifest {
	m.icons = append(slices.Clip(m.icons), v)
	return m
}

// Related appends a related application.
func (m Manifest) Related(v Related) Manifest {
	m.related = append(slices.Clip(m.related), v)
	return m
}

// Build serializes the manifest as compact JSON.
//
// Unset members are omitted; icons and related_applications are always
// present. On failure no partial output is returned and the error carries
// [errors.ErrCodeSerialization].
func (m Manifest) Build() (string, error) {
	return m.encode("")
}

// Pretty serializes the manifest as JSON indented with two spaces.
// It accepts and rejects exactly what [Manifest.Build] does.
func (m Manifest) Pretty() (string, error) {
	return m.encode("  ")
}

// MarshalJSON implements json.Marshaler so a Manifest can be embedded in
// other JSON documents. It fails like [Manifest.Build], but json.Marshal
// re-escapes '&', '<' and '>' as \u0026, \u003c and \u003e in its result.
// Use [Manifest.Build] or [Manifest.Pretty] for the unescaped text.
func (m Manifest) MarshalJSON() ([]byte, error) {
	return marshalCompact(m.wire())
}

// manifestJSON fixes the member order and wire names of the output.
type manifestJSON struct {
	Name                      string        `json:"name"`
	ShortName                 *string       `json:"short_name,omitempty"`
	StartURL                  *string       `json:"start_url,omitempty"`
	Display                   DisplayMode   `json:"display,omitempty"`
	BackgroundColor           *string       `json:"background_color,omitempty"`
	Description               *string       `json:"description,omitempty"`
	Dir                       Direction     `json:"dir,omitempty"`
	Orientation               Orientation   `json:"orientation,omitempty"`
	Lang                      *string       `json:"lang,omitempty"`
	Scope                     *string       `json:"scope,omitempty"`
	ThemeColor                *string       `json:"theme_color,omitempty"`
	PreferRelatedApplications *bool         `json:"prefer_related_applications,omitempty"`
	Icons                     []iconJSON    `json:"icons"`
	RelatedApplications       []relatedJSON `json:"related_applications"`
}

func (m Manifest) wire() manifestJSON {
	out := manifestJSON{
		Name:                      m.name,
		ShortName:                 m.shortName,
		StartURL:                  m.startURL,
		Display:                   m.display,
		BackgroundColor:           m.backgroundColor,
		Description:               m.description,
		Dir:                       m.dir,
		Orientation:               m.orientation,
		Lang:                      m.lang,
		Scope:                     m.scope,
		ThemeColor:                m.themeColor,
		PreferRelatedApplications: m.preferRelatedApplications,
		Icons:                     make([]iconJSON, len(m.icons)),
		RelatedApplications:       make([]relatedJSON, len(m.related)),
	}
	for i, icon := range m.icons {
		out.Icons[i] = icon.wire()
	}
	for i, r := range m.related {
		out.RelatedApplications[i] = r.wire()
	}
	return out
}

func (m Manifest) encode(indent string) (string, error) {
	data, err := marshal(m.wire(), indent)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeSerialization, err, "encode manifest %q", m.name)
	}
	return string(data), nil
}

func marshalCompact(v any) ([]byte, error) {
	return marshal(v, "")
}

// marshal encodes v without HTML escaping so URLs keep their '&' verbatim.
func marshal(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
