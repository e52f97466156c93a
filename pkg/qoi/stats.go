package qoi

// Stats counts the opcodes seen during one decode or encode pass.
type Stats struct {
	Pixels uint64
	Index  uint64
	Diff   uint64
	Luma   uint64
	Run    uint64
	Rgb    uint64
	Rgba   uint64
}

// Ops returns the total number of opcodes.
func (s Stats) Ops() uint64 {
	return s.Index + s.Diff + s.Luma + s.Run + s.Rgb + s.Rgba
}

func (s *Stats) count(op byte) {
	switch op {
	case OpRgb:
		s.Rgb++
	case OpRgba:
		s.Rgba++
	case OpIndex:
		s.Index++
	case OpDiff:
		s.Diff++
	case OpLuma:
		s.Luma++
	case OpRun:
		s.Run++
	}
}
