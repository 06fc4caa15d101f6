package effects

// dcBlockerPole is the one-pole coefficient, about 35 Hz at 44.1 kHz.
const dcBlockerPole = 0.995

// DCBlocker removes DC with a one-pole high-pass.
type DCBlocker struct {
	state float64
}

// ProcessSample filters one sample.
func (b *DCBlocker) ProcessSample(x float64) float64 {
	next := x + dcBlockerPole*b.state
	y := next - b.state
	b.state = next
	return y
}

// Reset clears the filter state.
func (b *DCBlocker) Reset() { b.state = 0 }
