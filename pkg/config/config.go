package config

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/webmanifest/pkg/errors"
	"github.com/matzehuels/webmanifest/pkg/manifest"
)

// Load reads and parses a definition file, applies defaults, and validates.
// The format is chosen from the file extension.
func Load(path string) (*Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "definition %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "reading definition %s", path)
	}

	def, err := Parse(data, format)
	if err != nil {
		return nil, withPath(err, path)
	}
	def.Path = path
	return def, nil
}

// withPath prefixes a Parse error with the definition path, keeping its code
// and cause.
func withPath(err error, path string) error {
	var e *errors.Error
	if stderrors.As(err, &e) {
		return &errors.Error{Code: e.Code, Message: path + ": " + e.Message, Cause: e.Cause}
	}
	return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
}

// FormatFromPath maps a definition file extension to its Format.
func FormatFromPath(path string) (Format, error) {
	if err := errors.ValidateDefinitionFilename(path); err != nil {
		return "", err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	default:
		return FormatYAML, nil
	}
}

// Parse decodes a definition in the given format, applies defaults, and
// validates it. Keys that are not manifest members are rejected.
func Parse(data []byte, format Format) (*Definition, error) {
	var def Definition
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &def)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing TOML")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown member %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing YAML")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported definition format %q", format)
	}

	applyDefaults(&def)

	if err := validate(&def); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid definition")
	}

	return &def, nil
}

func applyDefaults(def *Definition) {
	for _, s := range []*string{
		&def.Name, &def.ShortName, &def.StartURL, &def.Display, &def.BackgroundColor,
		&def.Description, &def.Dir, &def.Orientation, &def.Lang, &def.Scope, &def.ThemeColor,
	} {
		*s = strings.TrimSpace(*s)
	}

	for i := range def.Icons {
		def.Icons[i].Src = strings.TrimSpace(def.Icons[i].Src)
		def.Icons[i].Sizes = strings.TrimSpace(def.Icons[i].Sizes)
		// "any" is the W3C keyword for icons that scale to any size.
		if def.Icons[i].Sizes == "" {
			def.Icons[i].Sizes = "any"
		}
	}

	for i := range def.RelatedApplications {
		def.RelatedApplications[i].Platform = strings.TrimSpace(def.RelatedApplications[i].Platform)
		def.RelatedApplications[i].URL = strings.TrimSpace(def.RelatedApplications[i].URL)
	}
}

func validate(def *Definition) error {
	if err := errors.ValidateRequired("name", def.Name); err != nil {
		return err
	}
	for _, f := range []struct{ field, value string }{
		{"name", def.Name},
		{"short_name", def.ShortName},
		{"description", def.Description},
	} {
		if err := errors.ValidateText(f.field, f.value); err != nil {
			return err
		}
	}
	// Checked here so a bad file is reported instead of tripping the
	// builder's development assertion.
	if err := errors.ValidateMaxLength("short_name", def.ShortName, manifest.MaxShortNameLength); err != nil {
		return err
	}

	if def.Display != "" {
		if _, err := manifest.ParseDisplayMode(def.Display); err != nil {
			return err
		}
	}
	if def.Dir != "" {
		if _, err := manifest.ParseDirection(def.Dir); err != nil {
			return err
		}
	}
	if def.Orientation != "" {
		if _, err := manifest.ParseOrientation(def.Orientation); err != nil {
			return err
		}
	}

	for i, icon := range def.Icons {
		if err := errors.ValidateRequired("icons["+strconv.Itoa(i)+"].src", icon.Src); err != nil {
			return err
		}
	}
	for i, r := range def.RelatedApplications {
		if err := errors.ValidateRequired("related_applications["+strconv.Itoa(i)+"].platform", r.Platform); err != nil {
			return err
		}
		if err := errors.ValidateRequired("related_applications["+strconv.Itoa(i)+"].url", r.URL); err != nil {
			return err
		}
	}

	return nil
}

// Manifest turns the definition into a manifest builder. Empty members stay
// unset. It fails only on enum tokens the definition did not validate, which
// can happen when a Definition is assembled by hand; such a Definition is
// also subject to the builder's short_name assertion.
func (d *Definition) Manifest() (manifest.Manifest, error) {
	m := manifest.New(d.Name)

	if d.ShortName != "" {
		m = m.ShortName(d.ShortName)
	}
	if d.StartURL != "" {
		m = m.StartURL(d.StartURL)
	}
	if d.Display != "" {
		mode, err := manifest.ParseDisplayMode(d.Display)
		if err != nil {
			return manifest.Manifest{}, err
		}
		m = m.DisplayMode(mode)
	}
	if d.BackgroundColor != "" {
		m = m.BgColor(d.BackgroundColor)
	}
	if d.Description != "" {
		m = m.Description(d.Description)
	}
	if d.Dir != "" {
		dir, err := manifest.ParseDirection(d.Dir)
		if err != nil {
			return manifest.Manifest{}, err
		}
		m = m.Direction(dir)
	}
	if d.Orientation != "" {
		o, err := manifest.ParseOrientation(d.Orientation)
		if err != nil {
			return manifest.Manifest{}, err
		}
		m = m.Orientation(o)
	}
	if d.Lang != "" {
		m = m.Lang(d.Lang)
	}
	if d.Scope != "" {
		m = m.Scope(d.Scope)
	}
	if d.ThemeColor != "" {
		m = m.ThemeColor(d.ThemeColor)
	}
	if d.PreferRelatedApplications != nil {
		m = m.PreferRelatedApplications(*d.PreferRelatedApplications)
	}
	for _, icon := range d.Icons {
		m = m.Icon(manifest.NewIcon(icon.Src, icon.Sizes))
	}
	for _, r := range d.RelatedApplications {
		m = m.Related(manifest.NewRelated(r.Platform, r.URL))
	}

	return m, nil
}
