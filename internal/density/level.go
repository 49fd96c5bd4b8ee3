package density

// Level is a coarse crowd-density category for a place.
type Level int

const (
	Unknown Level = iota
	Low
	Medium
	High
)

// Label returns the Korean label used in formatted status messages.
func (l Level) Label() string {
	switch l {
	case Low:
		return "여유"
	case Medium:
		return "보통"
	case High:
		return "혼잡"
	default:
		return "알 수 없음"
	}
}

// String returns a lowercase English name, used in logs and tests.
func (l Level) String() string {
	switch l {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	default:
		return "unknown"
	}
}
