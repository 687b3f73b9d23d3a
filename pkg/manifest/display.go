package manifest

// DisplayMode is the developer's preferred display mode for the installed
// application. Serialized under the "display" key.
type DisplayMode int

const (
	// FullScreen uses all of the available display area and shows no user
	// agent chrome.
	FullScreen DisplayMode = iota + 1
	// Standalone looks and feels like a standalone application: its own
	// window and launcher icon, no navigation UI.
	Standalone
	// MinimalUI is like Standalone but keeps a minimal set of navigation
	// controls. The exact elements vary by browser.
	MinimalUI
	// Browser opens the application in a conventional tab or window.
	Browser
)

var displayModeTable = tokenTable[DisplayMode]{
	kind:   "display mode",
	tokens: []string{"", "full-screen", "standalone", "minimal-ui", "browser"},
}

func (m DisplayMode) String() string {
	if s, ok := displayModeTable.token(m); ok {
		return s
	}
	return invalidString("DisplayMode", int(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m DisplayMode) MarshalText() ([]byte, error) { return displayModeTable.marshal(m) }

// ParseDisplayMode returns the DisplayMode whose wire token is s.
func ParseDisplayMode(s string) (DisplayMode, error) { return displayModeTable.parse(s) }

// DisplayModes returns every DisplayMode in declaration order.
func DisplayModes() []DisplayMode { return displayModeTable.values() }
