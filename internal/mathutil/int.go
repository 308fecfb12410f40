package mathutil

import "math"

// IntMin returns the smaller of two ints (search: int-math).
func IntMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// IntMax returns the larger of two ints (search: int-math).
func IntMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// IntClamp limits v to [lo, hi] (search: int-math).
// When hi < lo the result is lo.
func IntClamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// ClipSpan intersects the half-open span [pos, pos+length) with [0, limit).
// It never overflows, whatever pos and length are.
func ClipSpan(pos, length, limit int) (lo, hi int, ok bool) {
	if length <= 0 || limit <= 0 {
		return 0, 0, false
	}
	hi = limit
	// limit-length cannot overflow: limit > 0 and length > 0
	if pos < limit-length {
		hi = pos + length
	}
	lo = IntMax(pos, 0)
	if lo >= hi {
		return 0, 0, false
	}
	return lo, hi, true
}

// FloatClamp limits v to [lo, hi]. NaN collapses to lo.
func FloatClamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NormalizeAngle wraps an angle in radians into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	// math.Mod of a tiny negative value can round back up to 2π
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}
