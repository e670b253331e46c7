package gm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oliverbestmann/vcl/check"
)

func requireVecInDelta[S Scalar, N Size](t *testing.T, expected, actual Vec[S, N], delta float64) {
	t.Helper()

	for idx := range expected.Len() {
		require.InDeltaf(t, float64(expected.v[idx]), float64(actual.v[idx]), delta,
			"component %d: expected %s, got %s", idx, expected, actual)
	}
}

func requireMatInDelta[S Scalar, R, C Size](t *testing.T, expected, actual Mat[S, R, C], delta float64) {
	t.Helper()

	for idx := range expected.Len() {
		require.InDeltaf(t, float64(expected.v[idx]), float64(actual.v[idx]), delta,
			"entry %d: expected %s, got %s", idx, expected, actual)
	}
}

// requireRotationInDelta compares two rotations by their effect on the coordinate axes.
func requireRotationInDelta(t *testing.T, expected, actual Rotation, delta float64) {
	t.Helper()

	for _, axis := range []Vec3{V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)} {
		requireVecInDelta(t, expected.Apply(axis), actual.Apply(axis), delta)
	}
}

func requireViolation(t *testing.T, kind check.Kind, fn func()) *check.Error {
	t.Helper()

	err := check.Catch(fn)
	require.Error(t, err)

	checkErr, ok := check.AsError(err)
	require.True(t, ok)
	require.Equal(t, kind, checkErr.Kind, "unexpected violation: %s", err)

	return checkErr
}
