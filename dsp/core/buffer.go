package core

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// Interleave writes left/right frames into dst as L R L R ... float32
// samples and returns the number of frames written.
func Interleave(dst []float32, left, right []float64) int {
	n := len(dst) / 2
	if len(left) < n {
		n = len(left)
	}
	if len(right) < n {
		n = len(right)
	}
	for i := 0; i < n; i++ {
		dst[2*i] = float32(left[i])
		dst[2*i+1] = float32(right[i])
	}
	return n
}
