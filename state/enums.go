// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package state defines the render-state fingerprint that selects per-pixel
// behavior, along with the enums it is built from.
//
// A PixelFuncID captures every state bit that changes pixel-level
// computation: blend configuration, texture format and combine mode,
// alpha/depth/stencil tests, fog, dithering, and the color write mask. Two
// draws with identical identifiers perform identical per-pixel computation,
// which is what makes the identifier usable as a cache key for specialized
// pixel functions.
package state

import "fmt"

// BlendFactor selects a per-channel multiplier for the source or destination
// color during blending. The doubled-alpha factors are a quirk of the
// reference hardware: the factor value is 2*alpha, unclamped, with clamping
// applied only after the blend equation.
type BlendFactor uint8

const (
	FactorZero BlendFactor = iota
	FactorOne
	FactorSrcColor
	FactorOneMinusSrcColor
	FactorSrcAlpha
	FactorOneMinusSrcAlpha
	FactorDstColor
	FactorOneMinusDstColor
	FactorDstAlpha
	FactorOneMinusDstAlpha
	FactorDoubleSrcAlpha
	FactorOneMinusDoubleSrcAlpha
	FactorDoubleDstAlpha
	FactorOneMinusDoubleDstAlpha
	FactorFix

	blendFactorCount
)

var blendFactorNames = [blendFactorCount]string{
	"Zero",
	"One",
	"SrcColor",
	"OneMinusSrcColor",
	"SrcAlpha",
	"OneMinusSrcAlpha",
	"DstColor",
	"OneMinusDstColor",
	"DstAlpha",
	"OneMinusDstAlpha",
	"DoubleSrcAlpha",
	"OneMinusDoubleSrcAlpha",
	"DoubleDstAlpha",
	"OneMinusDoubleDstAlpha",
	"Fix",
}

func (f BlendFactor) String() string {
	if f >= blendFactorCount {
		return fmt.Sprintf("BlendFactor(%d)", uint8(f))
	}
	return blendFactorNames[f]
}

// IsValid reports whether f is a known blend factor.
func (f BlendFactor) IsValid() bool { return f < blendFactorCount }

// BlendEquation selects how the scaled source and destination terms merge.
// Min, Max, and AbsDiff ignore the blend factors, as on the reference
// hardware.
type BlendEquation uint8

const (
	EqAdd BlendEquation = iota
	EqSubtract
	EqReverseSubtract
	EqMin
	EqMax
	EqAbsDiff

	blendEquationCount
)

var blendEquationNames = [blendEquationCount]string{
	"Add",
	"Subtract",
	"ReverseSubtract",
	"Min",
	"Max",
	"AbsDiff",
}

func (e BlendEquation) String() string {
	if e >= blendEquationCount {
		return fmt.Sprintf("BlendEquation(%d)", uint8(e))
	}
	return blendEquationNames[e]
}

// IsValid reports whether e is a known blend equation.
func (e BlendEquation) IsValid() bool { return e < blendEquationCount }

// TexFunc selects how the interpolated primary color combines with the
// sampled texel color.
type TexFunc uint8

const (
	TexModulate TexFunc = iota
	TexDecal
	TexBlend
	TexReplace
	TexAdd

	texFuncCount
)

var texFuncNames = [texFuncCount]string{
	"Modulate",
	"Decal",
	"Blend",
	"Replace",
	"Add",
}

func (f TexFunc) String() string {
	if f >= texFuncCount {
		return fmt.Sprintf("TexFunc(%d)", uint8(f))
	}
	return texFuncNames[f]
}

// IsValid reports whether f is a known combine mode.
func (f TexFunc) IsValid() bool { return f < texFuncCount }

// TestFunc is the comparison used by the alpha, depth, and stencil tests.
// The value order matches the reference hardware's encoding.
type TestFunc uint8

const (
	TestNever TestFunc = iota
	TestAlways
	TestEqual
	TestNotEqual
	TestLess
	TestLessEqual
	TestGreater
	TestGreaterEqual

	testFuncCount
)

var testFuncNames = [testFuncCount]string{
	"Never",
	"Always",
	"Equal",
	"NotEqual",
	"Less",
	"LessEqual",
	"Greater",
	"GreaterEqual",
}

func (f TestFunc) String() string {
	if f >= testFuncCount {
		return fmt.Sprintf("TestFunc(%d)", uint8(f))
	}
	return testFuncNames[f]
}

// IsValid reports whether f is a known test function.
func (f TestFunc) IsValid() bool { return f < testFuncCount }

// StencilOp is the action applied to the stencil buffer on stencil fail,
// depth fail, or pass. Increment and Decrement saturate at 255 and 0.
type StencilOp uint8

const (
	StencilKeep StencilOp = iota
	StencilZero
	StencilReplace
	StencilInvert
	StencilIncrement
	StencilDecrement

	stencilOpCount
)

var stencilOpNames = [stencilOpCount]string{
	"Keep",
	"Zero",
	"Replace",
	"Invert",
	"Increment",
	"Decrement",
}

func (o StencilOp) String() string {
	if o >= stencilOpCount {
		return fmt.Sprintf("StencilOp(%d)", uint8(o))
	}
	return stencilOpNames[o]
}

// IsValid reports whether o is a known stencil operation.
func (o StencilOp) IsValid() bool { return o < stencilOpCount }
