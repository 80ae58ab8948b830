// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package softgpu is a software implementation of the pixel-generation stage
// of a fixed-function GPU.
//
// Given already-transformed vertex data for a primitive (triangle, line,
// point, or axis-aligned clear rectangle), softgpu produces the same
// per-pixel color, depth, and stencil results the reference hardware would,
// including its texture-environment combine modes, blend equations, and
// depth/stencil test interactions. It contains no vertex transform stage, no
// shader execution, and no hardware driver interaction: it is strictly
// primitive in, pixel writes out.
//
// Package layout:
//
//   - mathx: small integer/float vector types used by interpolation and
//     color arithmetic.
//   - pixfmt: pixel formats, buffers, render targets, and textures. The
//     rasterizer writes through these but never allocates them.
//   - state: the PixelFuncID render-state fingerprint and its enums.
//   - combine: texture-environment color combination.
//   - blend: framebuffer blend factor and equation evaluation.
//   - pixel: per-PixelFuncID specialized pixel functions and their cache.
//   - raster: scan conversion of triangles, lines, points, and clears.
//   - debug: read-only stencil and texture readback for tooling.
//   - tiling: optional worker pool for band-parallel draws over disjoint
//     destination regions.
//
// Rasterization of a single primitive is synchronous and runs to completion.
// The pixel-function cache is safe for concurrent use; overlapping writes to
// the same destination region are the caller's responsibility to serialize.
package softgpu
