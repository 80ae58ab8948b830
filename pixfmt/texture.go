// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pixfmt

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/softgpu/mathx"
)

// Texture is a bound texture: a base image plus optional mipmap levels.
// Level 0 is the base. The rasterizer samples level 0 with nearest-neighbor
// filtering and repeat wrapping; additional levels exist for debug readback
// and future filtering work.
type Texture struct {
	levels []*Buffer
}

// NewTexture creates a texture from its mip levels. Level 0 must be present
// and all levels must be color-format buffers.
func NewTexture(levels ...*Buffer) (*Texture, error) {
	if len(levels) == 0 || levels[0] == nil {
		return nil, ErrInvalidDimensions
	}
	for _, l := range levels {
		if l == nil || !l.Format().IsColor() {
			return nil, ErrInvalidFormat
		}
	}
	return &Texture{levels: append([]*Buffer(nil), levels...)}, nil
}

// LevelCount returns the number of mip levels.
func (t *Texture) LevelCount() int {
	if t == nil {
		return 0
	}
	return len(t.levels)
}

// Level returns the buffer for the given mip level.
func (t *Texture) Level(i int) (*Buffer, bool) {
	if t == nil || i < 0 || i >= len(t.levels) {
		return nil, false
	}
	return t.levels[i], true
}

// Sample returns the nearest texel at normalized coordinates (u, v) on the
// base level, with repeat wrapping. Channels are expanded to 0..255.
func (t *Texture) Sample(u, v float32) mathx.Vec4i {
	base := t.levels[0]
	w, h := base.Width(), base.Height()
	x := wrapCoord(u, w)
	y := wrapCoord(v, h)
	return base.RGBA(x, y)
}

// wrapCoord maps a normalized coordinate onto [0, n) with repeat wrapping.
func wrapCoord(f float32, n int) int {
	i := int(math32.Floor(f * float32(n)))
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
