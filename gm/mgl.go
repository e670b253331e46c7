package gm

import "github.com/go-gl/mathgl/mgl32"

// Conversions from and to the mgl32 types, e.g. to upload a matrix to a GL style API.
// mgl32 stores matrices in column major order.

func Mat4ToMgl(m Mat4) mgl32.Mat4 {
	var result mgl32.Mat4
	for row := range 4 {
		for col := range 4 {
			result[col*4+row] = m.v[row*4+col]
		}
	}

	return result
}

func Mat4FromMgl(m mgl32.Mat4) Mat4 {
	var result Mat4
	for row := range 4 {
		for col := range 4 {
			result.v[row*4+col] = m[col*4+row]
		}
	}

	return result
}

func Mat3ToMgl(m Mat3) mgl32.Mat3 {
	var result mgl32.Mat3
	for row := range 3 {
		for col := range 3 {
			result[col*3+row] = m.v[row*3+col]
		}
	}

	return result
}

func Vec3ToMgl(v Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X(), v.Y(), v.Z()}
}

func Vec3FromMgl(v mgl32.Vec3) Vec3 {
	return V3(v[0], v[1], v[2])
}

func QuatToMgl(q Quat) mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

func QuatFromMgl(q mgl32.Quat) Quat {
	return Quat{X: q.V[0], Y: q.V[1], Z: q.V[2], W: q.W}
}
