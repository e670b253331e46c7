// Package gm (stands for geometry math) provides the numeric kernel of vcl.
//
// It includes a fixed size vector type Vec, a fixed size matrix type Mat, a
// quaternion backed Rotation and the affine transforms AffineRT and AffineRTS.
//
// The size of a Vec or Mat is part of its type: D1, D2, D3 and D4 are type level
// sizes. Multiplying matrices with mismatching inner dimensions does not compile.
// Use the aliases Vec2, Vec3, Vec4, Mat3 and Mat4 for the common float32 types.
//
// All element accessors come in a checked and an unchecked flavour. The checked
// accessors panic with a *check.Error if the index is out of range.
//
// There is also a type named Rad to represent angle values in radian.
package gm
