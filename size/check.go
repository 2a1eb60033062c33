package size

import "fmt"

// Verdict is the outcome of an index check.
type Verdict uint8

const (
	// Undecidable means at least one operand is Dynamic; the index must be
	// compared against the storage length at the moment of use.
	Undecidable Verdict = iota
	// InRange means the index is proven valid and may be used unchecked.
	InRange
	// OutOfRange means no valid operation exists for the operands.
	OutOfRange
)

func (v Verdict) String() string {
	switch v {
	case Undecidable:
		return "undecidable"
	case InRange:
		return "in-range"
	case OutOfRange:
		return "out-of-range"
	default:
		return fmt.Sprintf("verdict(%d)", uint8(v))
	}
}

// Decided reports whether the verdict was reached ahead of use.
func (v Verdict) Decided() bool { return v != Undecidable }

// CheckIndex checks 0 <= index < length (get, remove).
func CheckIndex(length, index Size) Verdict {
	return check(length, index, false)
}

// CheckIndexInclusive checks 0 <= index <= length (insert).
func CheckIndexInclusive(length, index Size) Verdict {
	return check(length, index, true)
}

func check(length, index Size, inclusive bool) Verdict {
	if length.IsDynamic() || index.IsDynamic() {
		return Undecidable
	}
	if InBounds(length.n, index.n, inclusive) {
		return InRange
	}
	return OutOfRange
}

// InBounds is the runtime comparison behind both checks. Dynamic codepaths
// call it with the real storage length.
func InBounds(length, index int, inclusive bool) bool {
	if index < 0 {
		return false
	}
	if inclusive {
		return index <= length
	}
	return index < length
}
