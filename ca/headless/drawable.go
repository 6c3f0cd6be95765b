// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package headless

import (
	"image"
	"sync"

	"github.com/gogpu/swapchain/ca"
)

// slot is a drawable's claim on its layer's pool. It is released exactly
// once, by Present or by the drawable's cleanup.
type slot struct {
	layer *SurfaceLayer
	once  sync.Once
}

func (s *slot) release() {
	s.once.Do(s.layer.reclaim)
}

// Drawable is a headless drawable. Render into Texture().Image() and then
// call Present.
type Drawable struct {
	slot    *slot
	texture *Texture
}

func (d *Drawable) Texture() ca.Texture {
	return d.texture
}

// Present composites the texture into the layer and returns the drawable
// to the pool. Calls after the first are ignored.
func (d *Drawable) Present() {
	d.slot.once.Do(func() {
		d.slot.layer.present(d.texture)
		d.slot.layer.reclaim()
	})
}

// Texture is a CPU-backed drawable texture.
type Texture struct {
	img    *image.RGBA
	format ca.PixelFormat
}

// Image returns the pixels backing the texture.
func (t *Texture) Image() *image.RGBA {
	return t.img
}

func (t *Texture) Width() uint32 {
	return uint32(t.img.Rect.Dx())
}

func (t *Texture) Height() uint32 {
	return uint32(t.img.Rect.Dy())
}

func (t *Texture) PixelFormat() ca.PixelFormat {
	return t.format
}

var (
	_ ca.Drawable = (*Drawable)(nil)
	_ ca.Texture  = (*Texture)(nil)
)
