package utils_test

import (
	"testing"

	"cineplex/pkg/utils"

	"github.com/stretchr/testify/require"
)

func TestRoundHalfUp1(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{3.5, 3.5},
		{7.0 / 3.0, 2.3},
		{2.25, 2.3},
		{2.24, 2.2},
		{4.95, 5.0},
		{5.0, 5.0},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, utils.RoundHalfUp1(tc.in), "RoundHalfUp1(%v)", tc.in)
	}
}
