package pipeline

import "math"

// Distance bands and their scores. Each band is inclusive on its lower
// bound; anything under 100 km scores zero.
const (
	band70KM = 400
	band50KM = 300
	band30KM = 200
	band10KM = 100
)

// ScoreForDistance maps a distance in kilometers to an eligibility score
// via a step function, highest band first. NaN scores zero; an absent
// distance never reaches this function (the row keeps its zero score).
func ScoreForDistance(distanceKM float64) int {
	if math.IsNaN(distanceKM) {
		return 0
	}
	switch {
	case distanceKM >= band70KM:
		return 70
	case distanceKM >= band50KM:
		return 50
	case distanceKM >= band30KM:
		return 30
	case distanceKM >= band10KM:
		return 10
	default:
		return 0
	}
}
