// Package model holds the row-level result record produced by the pipeline.
package model

import "math"

// presentationPrecision is the number of decimal places kept on numeric
// fields when a run's results are prepared for output.
const presentationPrecision = 4

// RowResult is the annotated outcome for one input row. It is produced
// exactly once per row and not mutated after the row completes, except
// for the final presentation rounding applied by the batch driver.
type RowResult struct {
	Index        int      `json:"index"`
	RawAddress   string   `json:"raw_address"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	DistanceKM   *float64 `json:"distance_km,omitempty"`
	Score        int      `json:"score"`
	ErrorMessage string   `json:"error_message,omitempty"`
}

// Failed reports whether the row carries a row-level error.
func (r *RowResult) Failed() bool {
	return r.ErrorMessage != ""
}

// Round rounds latitude, longitude and distance to the presentation
// precision. The score is untouched; it was computed from the unrounded
// distance.
func (r *RowResult) Round() {
	roundPtr(r.Latitude)
	roundPtr(r.Longitude)
	roundPtr(r.DistanceKM)
}

func roundPtr(v *float64) {
	if v == nil {
		return
	}
	shift := math.Pow(10, presentationPrecision)
	*v = math.Round(*v*shift) / shift
}
