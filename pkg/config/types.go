package config

// Definition is a manifest definition file. Every member is optional except
// Name; an empty string means "leave unset".
type Definition struct {
	Name                      string       `toml:"name" yaml:"name"`
	ShortName                 string       `toml:"short_name" yaml:"short_name"`
	StartURL                  string       `toml:"start_url" yaml:"start_url"`
	Display                   string       `toml:"display" yaml:"display"`
	BackgroundColor           string       `toml:"background_color" yaml:"background_color"`
	Description               string       `toml:"description" yaml:"description"`
	Dir                       string       `toml:"dir" yaml:"dir"`
	Orientation               string       `toml:"orientation" yaml:"orientation"`
	Lang                      string       `toml:"lang" yaml:"lang"`
	Scope                     string       `toml:"scope" yaml:"scope"`
	ThemeColor                string       `toml:"theme_color" yaml:"theme_color"`
	PreferRelatedApplications *bool        `toml:"prefer_related_applications" yaml:"prefer_related_applications"`
	Icons                     []IconDef    `toml:"icons" yaml:"icons"`
	RelatedApplications       []RelatedDef `toml:"related_applications" yaml:"related_applications"`

	// Path is the file the definition was loaded from, if any.
	Path string `toml:"-" yaml:"-"`
}

// IconDef is one [[icons]] entry.
type IconDef struct {
	Src   string `toml:"src" yaml:"src"`
	Sizes string `toml:"sizes" yaml:"sizes"`
}

// RelatedDef is one [[related_applications]] entry.
type RelatedDef struct {
	Platform string `toml:"platform" yaml:"platform"`
	URL      string `toml:"url" yaml:"url"`
}

// Format identifies the syntax of a definition file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)
