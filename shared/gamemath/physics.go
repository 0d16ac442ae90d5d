// Package gamemath holds the small numeric helpers shared by the simulation
// kernel and the frontends. Nothing here touches ebitengine.
package gamemath

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

// Decelerate pulls speed toward zero by rate and snaps it to exactly zero
// once its magnitude drops below epsilon.
func Decelerate(speed, rate, epsilon float64) float64 {
	speed -= Sign(speed) * rate
	if speed > -epsilon && speed < epsilon {
		return 0
	}
	return speed
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

// NextStep returns the first of the ascending steps above current, wrapping
// to the first step once current reaches the last.
func NextStep(steps []float64, current float64) float64 {
	for _, s := range steps {
		if s > current+1e-9 {
			return s
		}
	}
	if len(steps) == 0 {
		return current
	}
	return steps[0]
}
