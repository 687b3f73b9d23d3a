// Package manifest builds W3C web app manifests.
//
// # Overview
//
// A web app manifest is the JSON document a page links to when it wants to
// be installable as a Progressive Web App. It is served as [MediaType] and
// conventionally named with [FileExtension]:
//
//	<link rel="manifest" href="/manifest.webmanifest" type="application/manifest+json">
//
// This package only produces manifests. It never parses or fetches one.
//
// # Builder
//
// [New] takes the required name; fluent setters add the optional members and
// a finalizer returns the JSON text:
//
//	out, err := manifest.New("My Cool Application").
//	    ShortName("my app").
//	    BgColor("#000").
//	    DisplayMode(manifest.Standalone).
//	    Icon(manifest.NewIcon("/icon.png", "48x48")).
//	    Related(manifest.NewRelated("play", "https://play.google.com/store/apps/details?id=cheeaun.hackerweb")).
//	    Pretty()
//
// Setters have value receivers and return the updated [Manifest]; the
// receiver itself never changes. Scalar setters replace earlier values,
// [Manifest.Icon] and [Manifest.Related] append.
//
// # Output Contract
//
//   - name comes first, then the set scalars, then icons and related_applications.
//   - Unset members are left out entirely, never written as null or "".
//   - icons and related_applications are always present, possibly as [].
//   - display mode is written as "display", direction as "dir" and the icon
//     media type as "type". Every other key keeps its member name.
//   - [Direction], [DisplayMode] and [Orientation] values are written as their
//     W3C tokens ("rtl", "minimal-ui", "landscape-primary", ...). A value
//     outside an enumeration makes the finalizer fail with
//     [errors.ErrCodeSerialization] wrapping [errors.ErrCodeInvalidEnum].
//
// [Manifest.Build] writes compact JSON; [Manifest.Pretty] indents with two
// spaces. Both leave HTML characters unescaped. Passing a Manifest, [Icon] or
// [Related] to json.Marshal instead yields the same members, but the encoding
// package escapes '&', '<' and '>' in strings.
//
// # Icon Types
//
// [NewIcon] infers the icon's "type" from the extension of its source with
// [MediaTypeFor]: ".png" is "image/png", ".svg" is "image/svg+xml", and so on,
// case-insensitively. Unknown or missing extensions fall back to
// [DefaultMediaType].
//
// # Short Names
//
// Launchers truncate long labels, so [Manifest.ShortName] panics on values
// longer than [MaxShortNameLength] bytes. The check is a development aid: it
// is compiled out with the "release" build tag, after which over-long values
// are written unchanged.
//
// # Concurrency
//
// Manifests share no state. Separate manifests may be built on separate
// goroutines, and a finished Manifest may be finalized concurrently.
//
// [errors.ErrCodeSerialization]: github.com/matzehuels/webmanifest/pkg/errors.ErrCodeSerialization
// [errors.ErrCodeInvalidEnum]: github.com/matzehuels/webmanifest/pkg/errors.ErrCodeInvalidEnum
package manifest
