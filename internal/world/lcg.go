package world

const (
	lcgModulus    = 2147483647 // 2^31 - 1
	lcgMultiplier = 16807
)

// LCG is the Park-Miller minimal standard generator. The same seed always
// produces the same sequence, so decoration layouts are reproducible.
type LCG struct {
	state int64
}

// NewLCG seeds a generator. Seeds are reduced into [1, 2^31-2].
func NewLCG(seed int64) *LCG {
	s := seed % lcgModulus
	if s < 0 {
		s += lcgModulus
	}
	if s == 0 {
		s = 1
	}
	return &LCG{state: s}
}

// Next advances the generator and returns the new state.
func (r *LCG) Next() int64 {
	r.state = r.state * lcgMultiplier % lcgModulus
	return r.state
}

// Float returns a value in [0, 1).
func (r *LCG) Float() float64 {
	return float64(r.Next()-1) / (lcgModulus - 1)
}

// Intn returns a value in [0, n).
func (r *LCG) Intn(n int) int {
	return int(r.Float() * float64(n))
}

// State returns the current internal state.
func (r *LCG) State() int64 {
	return r.state
}
