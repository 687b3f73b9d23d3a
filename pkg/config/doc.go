// Package config loads manifest definition files.
//
// A definition lists the members of a web app manifest using their wire
// names, in TOML or YAML. The format follows the file extension: ".toml" is
// decoded with BurntSushi/toml, ".yaml" and ".yml" with gopkg.in/yaml.v3.
//
//	name = "My Cool Application"
//	short_name = "my app"
//	background_color = "#000"
//	display = "standalone"
//
//	[[icons]]
//	src = "/icon.png"
//	sizes = "48x48"
//
//	[[related_applications]]
//	platform = "play"
//	url = "https://play.google.com/store/apps/details?id=cheeaun.hackerweb"
//
// The same definition in YAML:
//
//	name: My Cool Application
//	short_name: my app
//	background_color: "#000"
//	display: standalone
//	icons:
//	  - src: /icon.png
//	    sizes: 48x48
//	related_applications:
//	  - platform: play
//	    url: https://play.google.com/store/apps/details?id=cheeaun.hackerweb
//
// [Load] and [Parse] reject unknown keys, a missing name, a short_name over
// [manifest.MaxShortNameLength] bytes, and enum values that are not wire
// tokens ("standalone", "rtl", "portrait-primary", ...). Icons without sizes
// default to "any". Colors, URLs and language tags are passed through
// unchecked. [Definition.Manifest] then yields a [manifest.Manifest] ready to
// finalize.
//
// [manifest.MaxShortNameLength]: github.com/matzehuels/webmanifest/pkg/manifest.MaxShortNameLength
// [manifest.Manifest]: github.com/matzehuels/webmanifest/pkg/manifest.Manifest
package config
