// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/softgpu/mathx"
	"github.com/gogpu/softgpu/state"
)

func alphaBlendID() state.PixelFuncID {
	return state.PixelFuncID{
		Blend:     true,
		BlendEq:   state.EqAdd,
		SrcFactor: state.FactorSrcAlpha,
		DstFactor: state.FactorOneMinusSrcAlpha,
	}
}

func TestAlphaBlendReference(t *testing.T) {
	id := alphaBlendID()
	src := mathx.V4(255, 0, 0, 128)
	dst := mathx.V4(0, 255, 0, 255)
	got := Blend(&id, src, dst)
	assert.Equal(t, mathx.V3(128, 127, 0), got)
}

func TestAlphaBlendBoundaryAlphas(t *testing.T) {
	id := alphaBlendID()
	dst := mathx.V4(10, 20, 30, 255)

	// Fully transparent source leaves the destination intact.
	src := mathx.V4(255, 255, 255, 0)
	assert.Equal(t, dst.XYZ(), Blend(&id, src, dst))

	// Fully opaque source replaces the destination exactly.
	src.W = 255
	assert.Equal(t, src.XYZ(), Blend(&id, src, dst))
}

func TestFactorTable(t *testing.T) {
	src := mathx.V4(100, 150, 200, 64)
	dst := mathx.V4(50, 60, 70, 192)

	tests := []struct {
		name   string
		factor state.BlendFactor
		want   mathx.Vec3i
	}{
		{"zero", state.FactorZero, mathx.V3(0, 0, 0)},
		{"one", state.FactorOne, mathx.V3(255, 255, 255)},
		{"src color", state.FactorSrcColor, mathx.V3(100, 150, 200)},
		{"inv src color", state.FactorOneMinusSrcColor, mathx.V3(155, 105, 55)},
		{"src alpha", state.FactorSrcAlpha, mathx.V3(64, 64, 64)},
		{"inv src alpha", state.FactorOneMinusSrcAlpha, mathx.V3(191, 191, 191)},
		{"dst color", state.FactorDstColor, mathx.V3(50, 60, 70)},
		{"inv dst color", state.FactorOneMinusDstColor, mathx.V3(205, 195, 185)},
		{"dst alpha", state.FactorDstAlpha, mathx.V3(192, 192, 192)},
		{"inv dst alpha", state.FactorOneMinusDstAlpha, mathx.V3(63, 63, 63)},
		{"double src alpha", state.FactorDoubleSrcAlpha, mathx.V3(128, 128, 128)},
		{"inv double src alpha", state.FactorOneMinusDoubleSrcAlpha, mathx.V3(127, 127, 127)},
		{"double dst alpha", state.FactorDoubleDstAlpha, mathx.V3(384, 384, 384)},
		{"inv double dst alpha", state.FactorOneMinusDoubleDstAlpha, mathx.V3(-129, -129, -129)},
		{"fix", state.FactorFix, mathx.V3(1, 2, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := factor(tt.factor, src, dst, [3]uint8{1, 2, 3})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEquations(t *testing.T) {
	src := mathx.V4(200, 10, 100, 255)
	dst := mathx.V4(100, 50, 100, 255)

	id := state.PixelFuncID{
		Blend:     true,
		SrcFactor: state.FactorOne,
		DstFactor: state.FactorOne,
	}

	tests := []struct {
		name string
		eq   state.BlendEquation
		want mathx.Vec3i
	}{
		{"add clamps", state.EqAdd, mathx.V3(255, 60, 200)},
		{"subtract clamps at zero", state.EqSubtract, mathx.V3(100, 0, 0)},
		{"reverse subtract", state.EqReverseSubtract, mathx.V3(0, 40, 0)},
		{"min ignores factors", state.EqMin, mathx.V3(100, 10, 100)},
		{"max ignores factors", state.EqMax, mathx.V3(200, 50, 100)},
		{"absdiff", state.EqAbsDiff, mathx.V3(100, 40, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := id
			id.BlendEq = tt.eq
			assert.Equal(t, tt.want, Blend(&id, src, dst))
		})
	}
}

func TestDoubledAlphaClampsAfterEquation(t *testing.T) {
	// 2*srcAlpha with alpha 192 is a 384/255 multiplier; the result must
	// clamp only after the equation, not at factor resolution.
	id := state.PixelFuncID{
		Blend:     true,
		BlendEq:   state.EqAdd,
		SrcFactor: state.FactorDoubleSrcAlpha,
		DstFactor: state.FactorZero,
	}
	src := mathx.V4(100, 200, 0, 192)
	got := Blend(&id, src, mathx.Vec4i{})
	// 100*384/255 = 150.6 -> 151, 200*384/255 = 301.2 -> clamped 255.
	assert.Equal(t, mathx.V3(151, 255, 0), got)
}

func TestUnknownEquationPanics(t *testing.T) {
	id := state.PixelFuncID{Blend: true, BlendEq: state.BlendEquation(9)}
	assert.Panics(t, func() { Blend(&id, mathx.Vec4i{}, mathx.Vec4i{}) })
}

func TestUnknownFactorPanics(t *testing.T) {
	id := state.PixelFuncID{Blend: true, BlendEq: state.EqAdd, SrcFactor: state.BlendFactor(77)}
	assert.Panics(t, func() { Blend(&id, mathx.Vec4i{}, mathx.Vec4i{}) })
}
