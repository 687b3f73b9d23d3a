//go:build !release

package manifest

// assertions guards developer-facing checks such as the short_name length.
// Build with -tags release to compile them out.
const assertions = true
