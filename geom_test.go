package fontview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVMetricsMul(t *testing.T) {
	m := VMetrics{Ascent: 1000, Descent: -250, LineGap: 50}
	assert.Equal(t, VMetrics{Ascent: 500, Descent: -125, LineGap: 25}, m.Mul(0.5))
	assert.Equal(t, float32(1300), m.LineAdvance())
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(1, 2).Add(Vector{X: 3, Y: -1})
	assert.Equal(t, Pt(4, 1), p)
	assert.Equal(t, Vector{X: 3, Y: -1}, p.Sub(Pt(1, 2)))
	assert.Equal(t, Scale{X: 7, Y: 7}, Uniform(7))
}
