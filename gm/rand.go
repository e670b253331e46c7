package gm

import (
	"math"
	"math/rand/v2"
)

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn[S Scalar](min, max S) S {
	return S(rand.Float64()*(float64(max)-float64(min))) + min
}

// RandomAngle returns a random angle uniformly sampled from the full circle
func RandomAngle() Rad {
	return Rad(RandomIn(0, 2*math.Pi))
}

// RandomVec3 returns a vector uniformly sampled from within the unit sphere.
func RandomVec3() Vec3 {
	for {
		v := V3(RandomIn[float32](-1, 1), RandomIn[float32](-1, 1), RandomIn[float32](-1, 1))
		if v.NormSqr() <= 1 {
			return v
		}
	}
}

// RandomUnitVec3 returns a vector uniformly sampled from the surface of the unit sphere.
func RandomUnitVec3() Vec3 {
	for {
		v := RandomVec3()
		if v.NormSqr() > 0.01 {
			return v.Normalized()
		}
	}
}

// RandomRotation returns a rotation around a random axis by a random angle.
func RandomRotation() Rotation {
	return RotationFromAxisAngle(RandomUnitVec3(), RandomAngle())
}
