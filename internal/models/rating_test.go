// internal/models/rating_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   float64
		isNil  bool
	}{
		{name: "no ratings", scores: nil, isNil: true},
		{name: "single rating", scores: []int{3}, want: 3},
		{name: "whole mean", scores: []int{3, 5}, want: 4},
		{name: "fractional mean", scores: []int{1, 2, 2}, want: 5.0 / 3.0},
		{name: "all fives", scores: []int{5, 5, 5, 5}, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ratings := make([]Rating, 0, len(tt.scores))
			for _, s := range tt.scores {
				ratings = append(ratings, Rating{Score: s})
			}

			got := AverageRating(ratings)
			if tt.isNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, tt.want, *got, 1e-9)
		})
	}
}

func TestProductAverageRating(t *testing.T) {
	p := Product{Ratings: []Rating{{Score: 2}, {Score: 4}}}
	got := p.AverageRating()
	require.NotNil(t, got)
	assert.Equal(t, 3.0, *got)

	empty := Product{}
	assert.Nil(t, empty.AverageRating())
}
