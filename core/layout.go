package core

import "math"

// Default canvas layout for nodes that arrive without a position.
const (
	LayoutCenterX   = 400.0
	LayoutCenterY   = 300.0
	LayoutMaxRadius = 200.0
)

// CircleSlot returns slot i of n evenly spaced points on the default layout
// circle. The radius grows with n up to LayoutMaxRadius.
func CircleSlot(i, n int) (float64, float64) {
	if n <= 0 {
		return LayoutCenterX, LayoutCenterY
	}
	radius := math.Min(LayoutMaxRadius, 50+float64(n)*10)
	angle := 2 * math.Pi * float64(i) / float64(n)
	return LayoutCenterX + radius*math.Cos(angle), LayoutCenterY + radius*math.Sin(angle)
}
