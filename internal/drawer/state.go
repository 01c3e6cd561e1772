package drawer

// State is a resting position of the sheet.
type State int

const (
	Hidden State = iota
	Half
	Full
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Half:
		return "half"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

// ParseState parses "hidden", "half" or "full".
func ParseState(s string) (State, bool) {
	switch s {
	case "hidden":
		return Hidden, true
	case "half":
		return Half, true
	case "full":
		return Full, true
	}
	return Hidden, false
}
