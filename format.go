package fwf

// Alignment selects which side of a column the data sits on. Left-aligned
// data is padded on the right with the fill character, right-aligned data on
// the left.
type Alignment string

const (
	Left  Alignment = "left"
	Right Alignment = "right"
)

// defaultFill pads columns that do not declare their own fill character.
const defaultFill = ' '

// Valid reports whether a is one of the two supported alignments.
func (a Alignment) Valid() bool {
	switch a {
	case Left, Right:
		return true
	default:
		return false
	}
}

func (a Alignment) String() string { return string(a) }

// ParseAlignment converts the textual form used in persisted layouts into an
// Alignment. The empty string maps to Left, matching the layout defaults.
func ParseAlignment(s string) (Alignment, bool) {
	switch Alignment(s) {
	case "":
		return Left, true
	case Left:
		return Left, true
	case Right:
		return Right, true
	default:
		return "", false
	}
}
