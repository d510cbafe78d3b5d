package usflag

import (
	"image"
	"math"
)

// innerRadiusRatio relates a five-pointed star's inner radius to its outer radius.
var innerRadiusRatio = math.Sin(degrees(18)) / math.Sin(degrees(54))

// StarRadii returns the outer and inner radius of a star on a canvas of the given height.
func StarRadii(canvasHeight int) (outer, inner float64) {
	outer = float64(canvasHeight) * (StarDiameter / 2)
	return outer, outer * innerRadiusRatio
}

// StarCenters returns the 50 star centers row by row. Even rows hold six stars
// starting at column offset 1, odd rows five stars starting at offset 2.
func StarCenters(c Canvas) []image.Point {
	if c.Empty() {
		return nil
	}
	stepX := float64(c.Height) * StarXOffset
	stepY := float64(c.Height) * StarYOffset
	centers := make([]image.Point, 0, StarCount)
	for row := 0; row < StarRows; row++ {
		perRow, offset := 6, 1
		if row%2 == 1 {
			perRow, offset = 5, 2
		}
		y := c.Y + int(stepY*float64(1+row))
		for col := 0; col < perRow; col++ {
			x := c.X + int(stepX*float64(offset+2*col))
			centers = append(centers, image.Pt(x, y))
		}
	}
	return centers
}

// StarVertices returns the ten vertices of a star, alternating outer and inner points
// and starting with the outer point at 18 degrees. The y axis points down.
func StarVertices(center image.Point, outer, inner float64) [StarVertexCount]image.Point {
	var pts [StarVertexCount]image.Point
	for i := range pts {
		r, angle := outer, degrees(18+36*float64(i))
		if i%2 == 1 {
			r, angle = inner, degrees(54+36*float64(i-1))
		}
		pts[i] = image.Pt(
			center.X+int(r*math.Cos(angle)),
			center.Y-int(r*math.Sin(angle)),
		)
	}
	return pts
}

// PaintStars draws the 50 white stars of the union.
func PaintStars(p Painter, c Canvas) {
	if c.Empty() {
		return
	}
	outer, inner := StarRadii(c.Height)
	for _, center := range StarCenters(c) {
		pts := StarVertices(center, outer, inner)
		p.FillPolygon(pts[:], White)
	}
}

func degrees(d float64) float64 { return d * math.Pi / 180 }
