package manifest

// Direction is the base text direction for the name, short_name and
// description members. Serialized under the "dir" key.
type Direction int

const (
	// LeftToRight is serialized as "ltr".
	LeftToRight Direction = iota + 1
	// RightToLeft is serialized as "rtl".
	RightToLeft
	// Auto asks the user agent to apply the Unicode bidirectional algorithm
	// to guess the direction. Serialized as "auto".
	Auto
)

var directionTable = tokenTable[Direction]{
	kind:   "direction",
	tokens: []string{"", "ltr", "rtl", "auto"},
}

// String returns the wire token, or "Direction(n)" for values outside the enumeration.
func (d Direction) String() string {
	if s, ok := directionTable.token(d); ok {
		return s
	}
	return invalidString("Direction", int(d))
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) { return directionTable.marshal(d) }

// ParseDirection returns the Direction whose wire token is s.
func ParseDirection(s string) (Direction, error) { return directionTable.parse(s) }

// Directions returns every Direction in declaration order.
func Directions() []Direction { return directionTable.values() }
