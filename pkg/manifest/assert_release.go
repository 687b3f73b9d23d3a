//go:build release

package manifest

const assertions = false
