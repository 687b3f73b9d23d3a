package io

import (
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/webmanifest/pkg/errors"
	"github.com/matzehuels/webmanifest/pkg/manifest"
)

// Layout selects how a manifest is finalized.
type Layout int

const (
	// Indented uses two-space indentation ([manifest.Manifest.Pretty]).
	Indented Layout = iota
	// Compact has no insignificant whitespace ([manifest.Manifest.Build]).
	Compact
)

// Render finalizes m in the given layout.
func Render(m manifest.Manifest, layout Layout) (string, error) {
	if layout == Compact {
		return m.Build()
	}
	return m.Pretty()
}

// WriteManifest finalizes m and writes it, plus a trailing newline, to w.
// Nothing is written when finalization fails.
func WriteManifest(m manifest.Manifest, layout Layout, w io.Writer) error {
	out, err := Render(m, layout)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out+"\n"); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write manifest")
	}
	return nil
}

// ExportManifest writes m to a file at path.
// The file is replaced atomically; on error the previous content is kept.
func ExportManifest(m manifest.Manifest, layout Layout, path string) error {
	out, err := Render(m, layout)
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(path), ".webmanifest-*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if _, err := f.WriteString(out + "\n"); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "chmod %s", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "rename %s", path)
	}
	return nil
}
