package chart

import (
	"fmt"
	"math"
)

// Point is a position in abstract chart units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PolarToCartesian converts a polar coordinate to a cartesian point. Angles
// are measured in degrees clockwise from 12 o'clock, matching screen space
// where Y grows downward.
func PolarToCartesian(cx, cy, r, angleDeg float64) Point {
	rad := (angleDeg - 90) * math.Pi / 180
	return Point{
		X: cx + r*math.Cos(rad),
		Y: cy + r*math.Sin(rad),
	}
}

// NormalizeRotation folds a rotation angle into [-90, 90] by half-turn
// steps, keeping rendered text upright on either side of the circle. The
// function is idempotent.
func NormalizeRotation(deg float64) float64 {
	r := math.Mod(deg, 180)
	if r > 90 {
		r -= 180
	} else if r < -90 {
		r += 180
	}
	return r
}

// ArcPath returns a closed SVG path describing the annular wedge between
// rInner and rOuter spanning [startDeg, endDeg]. A zero-width span produces
// a valid zero-area path.
func ArcPath(cx, cy, rInner, rOuter, startDeg, endDeg float64) string {
	outerStart := PolarToCartesian(cx, cy, rOuter, endDeg)
	outerEnd := PolarToCartesian(cx, cy, rOuter, startDeg)
	innerStart := PolarToCartesian(cx, cy, rInner, startDeg)
	innerEnd := PolarToCartesian(cx, cy, rInner, endDeg)

	largeArc := 0
	if endDeg-startDeg > 180 {
		largeArc = 1
	}

	return fmt.Sprintf("M %s A %s %s 0 %d 0 %s L %s A %s %s 0 %d 1 %s Z",
		fmtPoint(outerStart),
		fmtFloat(rOuter), fmtFloat(rOuter), largeArc, fmtPoint(outerEnd),
		fmtPoint(innerStart),
		fmtFloat(rInner), fmtFloat(rInner), largeArc, fmtPoint(innerEnd),
	)
}

// FullAnnulusPath returns a closed SVG path describing the complete ring
// between rInner and rOuter. Each circle is built from two complementary
// semicircular arcs because a single 360-degree arc collapses in some path
// renderers. Consumers should fill with the even-odd rule.
func FullAnnulusPath(cx, cy, rInner, rOuter float64) string {
	return fullCirclePath(cx, cy, rOuter) + " " + fullCirclePath(cx, cy, rInner)
}

func fullCirclePath(cx, cy, r float64) string {
	top := PolarToCartesian(cx, cy, r, 0)
	bottom := PolarToCartesian(cx, cy, r, 180)
	return fmt.Sprintf("M %s A %s %s 0 0 1 %s A %s %s 0 0 1 %s Z",
		fmtPoint(top),
		fmtFloat(r), fmtFloat(r), fmtPoint(bottom),
		fmtFloat(r), fmtFloat(r), fmtPoint(top),
	)
}

func fmtPoint(p Point) string {
	return fmtFloat(p.X) + " " + fmtFloat(p.Y)
}

func fmtFloat(v float64) string {
	return trimZeros(fmt.Sprintf("%.3f", v))
}

func trimZeros(s string) string {
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
