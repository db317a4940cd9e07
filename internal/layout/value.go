package layout

// Unit discriminates how a Value's amount is read.
type Unit uint8

const (
	// UnitAuto defers to intrinsic content size or flex distribution.
	UnitAuto Unit = iota
	// UnitFixed is an absolute cell count.
	UnitFixed
	// UnitPercent is a share of the parent's available space, 0-100.
	UnitPercent
)

// Value is one dimension of a style: auto, a fixed cell count, or a
// percentage. The zero value is auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns the content-driven dimension.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns an absolute dimension of n cells.
func Fixed(n int) Value {
	return Value{Amount: float64(n), Unit: UnitFixed}
}

// Percent returns a dimension of p percent of available space
// (50.0 means half).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// IsAuto reports whether the dimension is content-driven.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// Resolve converts the dimension to integer cells against the available
// space. Auto resolves to fallback; percentages truncate toward zero.
func (v Value) Resolve(available, fallback int) int {
	switch v.Unit {
	case UnitFixed:
		return int(v.Amount)
	case UnitPercent:
		return int(float64(available) * v.Amount / 100.0)
	default:
		return fallback
	}
}
