package animation

import "math"

// EaseInOutCubic accelerates through the first half and decelerates
// through the second. t is clamped to [0,1].
func EaseInOutCubic(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutElastic overshoots and settles with a spring-like finish.
func EaseOutElastic(t float64) float64 {
	if t <= 0 || t >= 1 {
		if t >= 1 {
			return 1
		}
		return 0
	}
	return math.Pow(2, -10*t)*math.Sin((t-0.075)*(2*math.Pi)/0.3) + 1
}
