package mesh

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oliverbestmann/vcl/buffer"
	"github.com/oliverbestmann/vcl/gm"
)

func TestRaySphere(t *testing.T) {
	dir := gm.V3(0, 0, 1)

	hit := RaySphere(gm.V3(0, 0, -5), dir, gm.V3(0, 0, 0), 1)
	require.True(t, hit.Valid)
	requireVecInDelta(t, gm.V3(0, 0, -1), hit.Position, 1e-6)
	requireVecInDelta(t, gm.V3(0, 0, -1), hit.Normal, 1e-6)
	require.InDelta(t, 4, hit.Distance, 1e-6)

	// starting within the sphere hits the exit point
	inside := RaySphere(gm.V3(0, 0, 0), dir, gm.V3(0, 0, 0), 1)
	require.True(t, inside.Valid)
	requireVecInDelta(t, gm.V3(0, 0, 1), inside.Position, 1e-6)

	behind := RaySphere(gm.V3(0, 0, 5), dir, gm.V3(0, 0, 0), 1)
	require.False(t, behind.Valid)
	require.Equal(t, gm.V3(0, 0, 1), behind.Normal)

	missed := RaySphere(gm.V3(3, 0, -5), dir, gm.V3(0, 0, 0), 1)
	require.False(t, missed.Valid)
}

func TestRaySpheresClosest(t *testing.T) {
	centers := buffer.Of(gm.V3(0, 0, 3), gm.V3(0, 0, 0), gm.V3(5, 0, 0))

	hit, idx := RaySpheresClosest(gm.V3(0, 0, -5), gm.V3(0, 0, 1), centers, 0.5)
	require.Equal(t, 1, idx)
	requireVecInDelta(t, gm.V3(0, 0, -0.5), hit.Position, 1e-6)

	_, idx = RaySpheresClosest(gm.V3(0, 3, -5), gm.V3(0, 0, 1), centers, 0.5)
	require.Equal(t, -1, idx)
}

func TestRayPlane(t *testing.T) {
	hit := RayPlane(gm.V3(1, 5, 2), gm.V3(0, -1, 0), gm.V3(0, 0, 0), gm.V3(0, 1, 0))
	require.True(t, hit.Valid)
	requireVecInDelta(t, gm.V3(1, 0, 2), hit.Position, 1e-6)

	parallel := RayPlane(gm.V3(1, 5, 2), gm.V3(1, 0, 0), gm.V3(0, 0, 0), gm.V3(0, 1, 0))
	require.False(t, parallel.Valid)
}
