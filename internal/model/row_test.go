package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }

func TestRowResultRound(t *testing.T) {
	r := RowResult{
		Index:      3,
		RawAddress: "somewhere",
		Latitude:   f64(37.49734629),
		Longitude:  f64(126.86401441),
		DistanceKM: f64(123.456789),
		Score:      10,
	}

	r.Round()

	assert.Equal(t, 37.4973, *r.Latitude)
	assert.Equal(t, 126.864, *r.Longitude)
	assert.Equal(t, 123.4568, *r.DistanceKM)
	assert.Equal(t, 10, r.Score)
}

func TestRowResultRound_AbsentFields(t *testing.T) {
	r := RowResult{Index: 0, RawAddress: "", ErrorMessage: "no address information"}

	r.Round()

	assert.Nil(t, r.Latitude)
	assert.Nil(t, r.Longitude)
	assert.Nil(t, r.DistanceKM)
	assert.Equal(t, 0, r.Score)
}

func TestRowResultFailed(t *testing.T) {
	assert.False(t, (&RowResult{}).Failed())
	assert.True(t, (&RowResult{ErrorMessage: "address not found"}).Failed())
}
