package doubleword

// Mode labels the precision/performance tradeoff of a kernel variant. The
// selection itself is static, encoded in the function names (MulFast,
// MulAccurateFMA, AddSloppy, ...); Mode exists for reporting, test naming
// and benchmark labelling.
type Mode int

const (
	Fast Mode = iota
	Accurate
	Sloppy
)

func (m Mode) String() string {
	switch m {
	case Fast:
		return "Fast"
	case Accurate:
		return "Accurate"
	case Sloppy:
		return "Sloppy"
	default:
		return "Unknown"
	}
}
