// Package geo provides the pure geometry behind the page decorations:
// the cubic Bézier approximation of a circle and the deterministic
// star-field pattern. Everything here is a stateless function of page
// dimensions, so page size can change without touching the layout code.
package geo

// Kappa is the control-point offset ratio used to approximate a quarter
// circle with a single cubic Bézier curve.
const Kappa = 0.5522847498

// Point is a position in PDF user space.
type Point struct {
	X, Y float64
}

// Curve is one cubic Bézier segment ending at End.
type Curve struct {
	Control1, Control2, End Point
}

// Circle returns the starting point and the four Bézier segments that
// approximate a full circle of the given radius around (cx, cy). Drawn in
// order from the start point the segments form a closed path.
func Circle(cx, cy, radius float64) (Point, [4]Curve) {
	c := radius * Kappa
	start := Point{cx + radius, cy}
	segments := [4]Curve{
		{Point{cx + radius, cy + c}, Point{cx + c, cy + radius}, Point{cx, cy + radius}},
		{Point{cx - c, cy + radius}, Point{cx - radius, cy + c}, Point{cx - radius, cy}},
		{Point{cx - radius, cy - c}, Point{cx - c, cy - radius}, Point{cx, cy - radius}},
		{Point{cx + c, cy - radius}, Point{cx + radius, cy - c}, Point{cx + radius, cy}},
	}
	return start, segments
}

// Star is one decorative dot of the star field.
type Star struct {
	X, Y, Size float64
}

// starCount is fixed; the pattern repeats identically on every page.
const starCount = 24

// StarField returns the pseudo-random star pattern for a page of the
// given dimensions. The positions follow a fixed stride modulo the usable
// page area, with the dot size alternating on every third star.
func StarField(pageWidth, pageHeight float64) []Star {
	stars := make([]Star, 0, starCount)
	for i := 0; i < starCount; i++ {
		size := 1.2
		if i%3 == 0 {
			size = 1.8
		}
		stars = append(stars, Star{
			X:    20 + float64((i*23)%(int(pageWidth)-40)),
			Y:    90 + float64((i*67)%(int(pageHeight)-140)),
			Size: size,
		})
	}
	return stars
}
