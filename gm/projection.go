package gm

// Perspective returns the perspective projection matrix with the vertical field of view
// fovY, the given aspect ratio (width / height) and the near and far clipping planes.
// The matrix maps the view frustum onto the clip cube [-1, 1]³ looking down the negative z axis.
func Perspective(fovY Rad, aspect, near, far float32) Mat4 {
	f := 1 / (fovY / 2).Tan()

	return M4(
		f/aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far+near)/(near-far), 2*far*near/(near-far),
		0, 0, -1, 0,
	)
}

// PerspectiveInverse returns the inverse of Perspective with the same arguments.
func PerspectiveInverse(fovY Rad, aspect, near, far float32) Mat4 {
	f := 1 / (fovY / 2).Tan()

	return M4(
		aspect/f, 0, 0, 0,
		0, 1/f, 0, 0,
		0, 0, 0, -1,
		0, 0, (near-far)/(2*far*near), (far+near)/(2*far*near),
	)
}

// Orthographic returns the orthographic projection of the given box onto the clip cube.
func Orthographic(left, right, bottom, top, near, far float32) Mat4 {
	return M4(
		2/(right-left), 0, 0, -(right+left)/(right-left),
		0, 2/(top-bottom), 0, -(top+bottom)/(top-bottom),
		0, 0, -2/(far-near), -(far+near)/(far-near),
		0, 0, 0, 1,
	)
}

// OrthographicInverse returns the inverse of Orthographic with the same arguments.
func OrthographicInverse(left, right, bottom, top, near, far float32) Mat4 {
	return M4(
		(right-left)/2, 0, 0, (right+left)/2,
		0, (top-bottom)/2, 0, (top+bottom)/2,
		0, 0, -(far-near)/2, -(far+near)/2,
		0, 0, 0, 1,
	)
}

// ProjectPoint transforms the point p by the homogeneous matrix m and
// performs the perspective division.
func ProjectPoint(m Mat4, p Vec3) Vec3 {
	clip := m.MulVec(V4(p.X(), p.Y(), p.Z(), 1))
	if clip.W() == 0 {
		return clip.XYZ()
	}

	return clip.XYZ().Div(clip.W())
}
