package gm

import (
	"math"

	"github.com/chewxy/math32"
)

// Rad is an angle in radians.
type Rad float32

func (r Rad) Degrees() float32 {
	return float32(r) * (180 / math.Pi)
}

// Radians returns the value of the angle in radians as float32.
func (r Rad) Radians() float32 {
	return float32(r)
}

// Normalized returns the angle normalized to the range [-π, π)
func (r Rad) Normalized() Rad {
	angle := math32.Mod(float32(r)+math.Pi, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}

	return Rad(angle - math.Pi)
}

// DifferenceTo returns the smallest difference between to angles
// normalized to the range [-π, π)
func (r Rad) DifferenceTo(other Rad) Rad {
	return (r - other).Normalized()
}

func (r Rad) Cos() float32 {
	return math32.Cos(float32(r))
}

func (r Rad) Sin() float32 {
	return math32.Sin(float32(r))
}

func (r Rad) Tan() float32 {
	return math32.Tan(float32(r))
}

// SinCos returns sine and cosine of the angle.
func (r Rad) SinCos() (sin, cos float32) {
	return math32.Sincos(float32(r))
}

func DegToRad(deg float32) Rad {
	return Rad(math.Pi / 180 * deg)
}
