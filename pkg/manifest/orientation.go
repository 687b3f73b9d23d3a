package manifest

// Orientation is the default orientation for all of the application's
// top-level browsing contexts.
type Orientation int

const (
	Any Orientation = iota + 1
	Natural
	Landscape
	LandscapePrimary
	LandscapeSecondary
	Portrait
	PortraitPrimary
	PortraitSecondary
)

var orientationTable = tokenTable[Orientation]{
	kind: "orientation",
	tokens: []string{
		"",
		"any",
		"natural",
		"landscape",
		"landscape-primary",
		"landscape-secondary",
		"portrait",
		"portrait-primary",
		"portrait-secondary",
	},
}

func (o Orientation) String() string {
	if s, ok := orientationTable.token(o); ok {
		return s
	}
	return invalidString("Orientation", int(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) { return orientationTable.marshal(o) }

// ParseOrientation returns the Orientation whose wire token is s.
func ParseOrientation(s string) (Orientation, error) { return orientationTable.parse(s) }

// Orientations returns every Orientation in declaration order.
func Orientations() []Orientation { return orientationTable.values() }
