package rng

// Sequence is a scripted Source that replays fixed values, for deterministic
// placement in tests and tools. Ints and Floats are consumed independently
// and wrap around when exhausted. Returned ints are clamped into [min, max).
type Sequence struct {
	Ints   []int
	Floats []float64

	nextInt   int
	nextFloat int
}

func (s *Sequence) UniformInt(min, max int) int {
	if max <= min || len(s.Ints) == 0 {
		return min
	}
	v := s.Ints[s.nextInt%len(s.Ints)]
	s.nextInt++
	if v < min {
		return min
	}
	if v >= max {
		return max - 1
	}
	return v
}

func (s *Sequence) UniformFloat() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.nextFloat%len(s.Floats)]
	s.nextFloat++
	if v < 0 {
		return 0
	}
	if v >= 1 {
		return 0.999999
	}
	return v
}
