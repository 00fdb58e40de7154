package atmosphere

import "github.com/Faultbox/nightyard/pkg/math"

// Gradient is the four-stop altitude gradient of the sky dome.
// MidLowStop and MidHighStop are the transition altitudes in (0, 1).
type Gradient struct {
	Horizon math.Vec3
	MidLow  math.Vec3
	MidHigh math.Vec3
	Zenith  math.Vec3

	MidLowStop  float32
	MidHighStop float32
}

// Color returns the gradient colour at the given altitude (0 horizon, 1 zenith).
// Each transition is a smoothstep blend layered over the previous one, so the
// exact stop colours appear at altitude 0, MidLowStop, MidHighStop and 1.
func (g Gradient) Color(altitude float32) math.Vec3 {
	t1 := math.Smoothstep(0, g.MidLowStop, altitude)
	c := math.MixVec3(g.Horizon, g.MidLow, t1)

	t2 := math.Smoothstep(g.MidLowStop, g.MidHighStop, altitude)
	c = math.MixVec3(c, g.MidHigh, t2)

	t3 := math.Smoothstep(g.MidHighStop, 1, altitude)
	return math.MixVec3(c, g.Zenith, t3)
}

// minStopGap keeps the two transitions from collapsing into each other.
const minStopGap = 0.01

// clampStops orders the transition altitudes so that
// 0 < midLow < midHigh < 1 with at least minStopGap between each.
func clampStops(midLow, midHigh float32) (float32, float32) {
	midLow = math.Clamp(midLow, minStopGap, 1-2*minStopGap)
	midHigh = math.Clamp(midHigh, midLow+minStopGap, 1-minStopGap)
	return midLow, midHigh
}
