// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package mathx provides the small vector types used throughout attribute
// interpolation and color arithmetic.
//
// The vector types are generic over their element type; the rasterizer uses
// int vectors for 0..255 color math (exact, matching hardware fixed-point
// behavior) and float32 vectors for screen-space positions and barycentric
// interpolation.
package mathx

import (
	"golang.org/x/exp/constraints"
)

// Number is the element constraint for the vector types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vec2 is a 2-component vector.
type Vec2[T Number] struct {
	X, Y T
}

// Vec3 is a 3-component vector.
type Vec3[T Number] struct {
	X, Y, Z T
}

// Vec4 is a 4-component vector. For colors the layout is R, G, B, A in
// X, Y, Z, W.
type Vec4[T Number] struct {
	X, Y, Z, W T
}

// Common instantiations.
type (
	Vec2f = Vec2[float32]
	Vec3f = Vec3[float32]
	Vec4f = Vec4[float32]
	Vec3i = Vec3[int]
	Vec4i = Vec4[int]
)

// V2 creates a Vec2.
func V2[T Number](x, y T) Vec2[T] { return Vec2[T]{X: x, Y: y} }

// V3 creates a Vec3.
func V3[T Number](x, y, z T) Vec3[T] { return Vec3[T]{X: x, Y: y, Z: z} }

// V4 creates a Vec4.
func V4[T Number](x, y, z, w T) Vec4[T] { return Vec4[T]{X: x, Y: y, Z: z, W: w} }

// Add returns the componentwise sum of two vectors.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] { return Vec2[T]{v.X + w.X, v.Y + w.Y} }

// Sub returns the componentwise difference of two vectors.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] { return Vec2[T]{v.X - w.X, v.Y - w.Y} }

// MulS returns the vector scaled by a scalar.
func (v Vec2[T]) MulS(s T) Vec2[T] { return Vec2[T]{v.X * s, v.Y * s} }

// Dot returns the dot product of two vectors.
func (v Vec2[T]) Dot(w Vec2[T]) T { return v.X*w.X + v.Y*w.Y }

// Cross returns the scalar 2D cross product, the z-component of the 3D cross
// product with z=0. Its sign gives the orientation of the turn from v to w.
func (v Vec2[T]) Cross(w Vec2[T]) T { return v.X*w.Y - v.Y*w.X }

// Add returns the componentwise sum of two vectors.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] { return Vec3[T]{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns the componentwise difference of two vectors.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] { return Vec3[T]{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Mul returns the componentwise product of two vectors.
func (v Vec3[T]) Mul(w Vec3[T]) Vec3[T] { return Vec3[T]{v.X * w.X, v.Y * w.Y, v.Z * w.Z} }

// MulS returns the vector scaled by a scalar.
func (v Vec3[T]) MulS(s T) Vec3[T] { return Vec3[T]{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product of two vectors.
func (v Vec3[T]) Dot(w Vec3[T]) T { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Clamp returns the vector with every component clamped to [lo, hi].
func (v Vec3[T]) Clamp(lo, hi T) Vec3[T] {
	return Vec3[T]{clamp(v.X, lo, hi), clamp(v.Y, lo, hi), clamp(v.Z, lo, hi)}
}

// WithW returns the Vec4 extension of v with the given fourth component.
func (v Vec3[T]) WithW(w T) Vec4[T] { return Vec4[T]{v.X, v.Y, v.Z, w} }

// Add returns the componentwise sum of two vectors.
func (v Vec4[T]) Add(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X + w.X, v.Y + w.Y, v.Z + w.Z, v.W + w.W}
}

// Sub returns the componentwise difference of two vectors.
func (v Vec4[T]) Sub(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X - w.X, v.Y - w.Y, v.Z - w.Z, v.W - w.W}
}

// Mul returns the componentwise product of two vectors.
func (v Vec4[T]) Mul(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X * w.X, v.Y * w.Y, v.Z * w.Z, v.W * w.W}
}

// MulS returns the vector scaled by a scalar.
func (v Vec4[T]) MulS(s T) Vec4[T] {
	return Vec4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Dot returns the dot product of two vectors.
func (v Vec4[T]) Dot(w Vec4[T]) T {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W
}

// Clamp returns the vector with every component clamped to [lo, hi].
func (v Vec4[T]) Clamp(lo, hi T) Vec4[T] {
	return Vec4[T]{clamp(v.X, lo, hi), clamp(v.Y, lo, hi), clamp(v.Z, lo, hi), clamp(v.W, lo, hi)}
}

// XYZ returns the first three components as a Vec3.
func (v Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{v.X, v.Y, v.Z} }

// WithXYZ returns v with its first three components replaced, keeping W.
func (v Vec4[T]) WithXYZ(w Vec3[T]) Vec4[T] { return Vec4[T]{w.X, w.Y, w.Z, v.W} }

func clamp[T Number](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
