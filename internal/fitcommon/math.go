package fitcommon

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp maps t in [0,1] onto [lo,hi]; t is clamped first.
func Lerp(lo, hi, t float64) float64 {
	return lo + (hi-lo)*Clamp(t, 0, 1)
}

// Unlerp is the inverse of Lerp.
func Unlerp(lo, hi, v float64) float64 {
	if hi == lo {
		return 0
	}
	return Clamp((v-lo)/(hi-lo), 0, 1)
}
