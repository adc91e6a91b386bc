package camera

import (
	"testing"

	"strokeview/internal/geom"

	"github.com/stretchr/testify/assert"
)

func TestFrameWideBounds(t *testing.T) {
	b := geom.BoundingBox{Min: geom.V3(-1, 0, 0), Max: geom.V3(1, 0, 0)}
	pose, center := Frame(b, DefaultMinDistance)
	assert.Equal(t, geom.Zero, center)
	assert.InDelta(t, 4, pose.Distance(), 1e-6)
	assert.Equal(t, geom.V3(0, 0, 4), pose.Position)
	assert.Equal(t, geom.Zero, pose.Target)
	assert.Equal(t, geom.UnitY, pose.Up)
}

func TestFrameRecentersOnBoundsCenter(t *testing.T) {
	b := geom.BoundingBox{Min: geom.V3(0, 0, 0), Max: geom.V3(5, 5, 5)}
	pose, center := Frame(b, DefaultMinDistance)
	assert.Equal(t, geom.V3(2.5, 2.5, 2.5), center)
	assert.Equal(t, geom.Zero, pose.Target)
	assert.Equal(t, geom.V3(0, 0, 10), pose.Position)
}

func TestFrameClampsDegenerateBounds(t *testing.T) {
	p := geom.V3(3, -2, 7)
	pose, center := Frame(geom.BoundingBox{Min: p, Max: p}, 0.5)
	assert.Equal(t, p, center)
	assert.InDelta(t, 0.5, pose.Distance(), 1e-6)
	assert.NotEqual(t, pose.Position, pose.Target)

	pose, _ = Frame(geom.BoundingBox{Min: p, Max: p}, 0)
	assert.InDelta(t, DefaultMinDistance, pose.Distance(), 1e-6)
}
