package mathutil

import "math"

func DegToRad(deg float64) float64 {
	return deg / 180 * math.Pi
}

func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// ClampFloat limits v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// RotatePoint rotates (x, y) around (cx, cy) by rad radians.
func RotatePoint(x, y, cx, cy, rad float64) (float64, float64) {
	s, c := math.Sincos(rad)
	dx, dy := x-cx, y-cy
	return cx + dx*c - dy*s, cy + dx*s + dy*c
}

// NormalizeDeg wraps deg into [0, 360).
func NormalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
