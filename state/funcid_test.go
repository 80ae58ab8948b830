// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package state

import (
	"testing"

	"github.com/gogpu/softgpu/pixfmt"
)

func TestKeyEqualForEqualIDs(t *testing.T) {
	a := PixelFuncID{
		Blend:     true,
		BlendEq:   EqAdd,
		SrcFactor: FactorSrcAlpha,
		DstFactor: FactorOneMinusSrcAlpha,
	}
	b := a
	if a.Key() != b.Key() {
		t.Error("equal identifiers must hash equal")
	}
}

func TestKeyDistinguishesFields(t *testing.T) {
	base := PixelFuncID{ColorFormat: pixfmt.FormatRGBA8888}
	variants := []func(*PixelFuncID){
		func(id *PixelFuncID) { id.Blend = true },
		func(id *PixelFuncID) { id.DstFactor = FactorDstAlpha },
		func(id *PixelFuncID) { id.Texture = true; id.TexFunc = TexModulate },
		func(id *PixelFuncID) { id.Dither = true },
		func(id *PixelFuncID) { id.StencilRef = 1 },
		func(id *PixelFuncID) { id.FixSrc = [3]uint8{1, 2, 3} },
		func(id *PixelFuncID) { id.ColorMask = NewColorMask(true, true, true, false) },
	}
	seen := map[uint64]bool{base.Key(): true}
	for i, mutate := range variants {
		id := base
		mutate(&id)
		k := id.Key()
		if seen[k] {
			t.Errorf("variant %d collided with a previous key", i)
		}
		seen[k] = true
	}
}

func TestNewColorMask(t *testing.T) {
	if got := NewColorMask(true, true, true, true); got != ([4]uint8{}) {
		t.Errorf("all-write mask = %v, want zero", got)
	}
	if got := NewColorMask(false, false, false, false); got != ([4]uint8{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("no-write mask = %v", got)
	}
	got := NewColorMask(true, false, true, false)
	want := [4]uint8{0x00, 0xff, 0x00, 0xff}
	if got != want {
		t.Errorf("mixed mask = %v, want %v", got, want)
	}
}

func TestWritesColor(t *testing.T) {
	id := PixelFuncID{}
	if !id.WritesColor() {
		t.Error("zero identifier must write color")
	}
	id.ColorMask = NewColorMask(false, false, false, false)
	if id.WritesColor() {
		t.Error("fully masked identifier must not write color")
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{FactorOneMinusSrcAlpha.String(), "OneMinusSrcAlpha"},
		{EqReverseSubtract.String(), "ReverseSubtract"},
		{TexModulate.String(), "Modulate"},
		{TestGreaterEqual.String(), "GreaterEqual"},
		{StencilIncrement.String(), "Increment"},
		{BlendFactor(99).String(), "BlendFactor(99)"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestEnumValidity(t *testing.T) {
	if !FactorFix.IsValid() || BlendFactor(100).IsValid() {
		t.Error("BlendFactor.IsValid misclassifies")
	}
	if !EqAbsDiff.IsValid() || BlendEquation(100).IsValid() {
		t.Error("BlendEquation.IsValid misclassifies")
	}
	if !TexAdd.IsValid() || TexFunc(100).IsValid() {
		t.Error("TexFunc.IsValid misclassifies")
	}
	if !StencilDecrement.IsValid() || StencilOp(100).IsValid() {
		t.Error("StencilOp.IsValid misclassifies")
	}
}
