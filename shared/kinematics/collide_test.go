package kinematics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectOverlaps(t *testing.T) {
	spike := Rect{X: 420, Y: 520, W: 40, H: 30}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"partial", Rect{X: 400, Y: 510, W: 40, H: 40}, true},
		{"flush sides", Rect{X: 420, Y: 510, W: 40, H: 40}, true},
		{"identical", spike, true},
		{"inside", Rect{X: 430, Y: 525, W: 10, H: 10}, true},
		{"around", Rect{X: 400, Y: 500, W: 100, H: 100}, true},
		{"touching left edge", Rect{X: 380, Y: 520, W: 40, H: 30}, false},
		{"touching top edge", Rect{X: 420, Y: 480, W: 40, H: 40}, false},
		{"touching corner", Rect{X: 380, Y: 480, W: 40, H: 40}, false},
		{"apart", Rect{X: 0, Y: 0, W: 40, H: 40}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, spike.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(spike))
		})
	}
}

func TestRectShape(t *testing.T) {
	shape := Rect{X: 10, Y: 20, W: 30, H: 40}.Shape()

	assert.Equal(t, 10.0, shape.X)
	assert.Equal(t, 20.0, shape.Y)
	topLeft, bottomRight := shape.Bounds()
	assert.Equal(t, []float64{10, 20}, []float64(topLeft))
	assert.Equal(t, []float64{40, 60}, []float64(bottomRight))
}

func TestResolve_HazardContainingBody(t *testing.T) {
	geom := testGeometry()
	geom.Hazards = []Hazard{{Rect: Rect{X: 200, Y: 400, W: 200, H: 150}}}

	s := restingState(280)
	s, events := Resolve(s, Intent{}, geom, DefaultTuning())
	assert.Equal(t, []Event{{Kind: EventHazardHit, Damage: 20}}, events)
	assert.Equal(t, 80, s.Health)
}

func TestResolve_PickupInsideBody(t *testing.T) {
	part := Rect{X: 310, Y: testFloorY - 30, W: 10, H: 10}
	geom := testGeometry()
	geom.Pickup = &part

	s := restingState(300)
	s, events := Resolve(s, Intent{}, geom, DefaultTuning())
	assert.Equal(t, []Event{{Kind: EventPickupCollected}}, events)
	assert.Equal(t, 1, s.ShipParts)
}
