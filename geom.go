package fontview

// Scale defines the size of a font in pixels per em, independently for the
// horizontal and the vertical axis.
type Scale struct {
	X, Y float32
}

// Uniform returns a Scale with both axes set to s.
func Uniform(s float32) Scale {
	return Scale{X: s, Y: s}
}

// Point is a position in pixels.
type Point struct {
	X, Y float32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vector is a displacement in pixels.
type Vector struct {
	X, Y float32
}

// VMetrics are the vertical metrics shared by all glyphs of a font.
//
// Ascent is the highest point any glyph reaches above the baseline.
// Descent is the lowest point any glyph reaches, relative to the baseline;
// it is usually negative. LineGap is the recommended gap between the
// descent of one line and the ascent of the next one.
type VMetrics struct {
	Ascent  float32
	Descent float32
	LineGap float32
}

// Mul scales all metrics by factor f.
func (m VMetrics) Mul(f float32) VMetrics {
	return VMetrics{
		Ascent:  m.Ascent * f,
		Descent: m.Descent * f,
		LineGap: m.LineGap * f,
	}
}

// LineAdvance returns the recommended distance between consecutive
// baselines.
func (m VMetrics) LineAdvance() float32 {
	return m.Ascent - m.Descent + m.LineGap
}
