// Package io writes finalized manifests to writers and files.
//
// [WriteManifest] finalizes a [manifest.Manifest] and writes it followed by a
// single newline, so the file ends the way text files conventionally do.
// [ExportManifest] does the same for a path, writing to a temporary file in
// the target directory and renaming it into place; a failed build never
// leaves a truncated manifest behind.
//
// Both accept [Compact] or [Indented] as the layout.
//
// [manifest.Manifest]: github.com/matzehuels/webmanifest/pkg/manifest.Manifest
package io
