// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swapchain

import (
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/swapchain/ca"
)

// CopyExtent is the size used when copying to or from a texture.
type CopyExtent struct {
	Width  uint32
	Height uint32
	Depth  uint32
}

// Texture wraps a drawable's native texture with the metadata needed to
// build a render pass against it.
type Texture struct {
	Raw         ca.Texture
	Format      gputypes.TextureFormat
	RawFormat   ca.PixelFormat
	Usage       gputypes.TextureUsage
	Dimension   gputypes.TextureDimension
	ArrayLayers uint32
	MipLevels   uint32
	CopySize    CopyExtent
}

// SurfaceTexture pairs a drawable with its texture. The caller owns both
// for one render and present cycle.
type SurfaceTexture struct {
	Texture                Texture
	Drawable               ca.Drawable
	PresentWithTransaction bool
}

// Present hands the drawable back to the compositor for display.
func (t *SurfaceTexture) Present() {
	t.Drawable.Present()
}

// Descriptor describes the texture in terms of the gogpu HAL.
func (t *SurfaceTexture) Descriptor() hal.TextureDescriptor {
	return hal.TextureDescriptor{
		Label: "swapchain drawable",
		Size: hal.Extent3D{
			Width:              t.Texture.CopySize.Width,
			Height:             t.Texture.CopySize.Height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     t.Texture.Dimension,
		Format:        t.Texture.Format,
		Usage:         t.Texture.Usage,
	}
}

// AcquiredSurfaceTexture is the result of a successful AcquireTexture.
type AcquiredSurfaceTexture struct {
	Texture *SurfaceTexture

	// Suboptimal is reserved and always false.
	Suboptimal bool
}

// AcquireTexture returns the next drawable texture.
//
// It blocks until the compositor has a drawable free, which may take
// several display refreshes, and holds the surface lock while it waits.
// If the compositor produces no drawable (the layer is off screen, its
// window is closing, or it has no size) AcquireTexture returns nil and no
// error; skip the frame and try again later.
//
// timeout is accepted for API compatibility and ignored: acquisition waits
// as long as the compositor does.
//
// AcquireTexture returns ErrUnconfigured if the surface is not configured.
func (s *Surface) AcquireTexture(timeout time.Duration) (*AcquiredSurfaceTexture, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rawFormat == ca.PixelFormatInvalid {
		return nil, ErrUnconfigured
	}

	drawable, texture := s.nextDrawable()
	if drawable == nil {
		Logger().Debug("swapchain: no drawable available")
		return nil, nil
	}

	st := &SurfaceTexture{
		Texture: Texture{
			Raw:         texture,
			Format:      s.format,
			RawFormat:   s.rawFormat,
			Usage:       s.usage,
			Dimension:   gputypes.TextureDimension2D,
			ArrayLayers: 1,
			MipLevels:   1,
			CopySize: CopyExtent{
				Width:  s.extent.Width,
				Height: s.extent.Height,
				Depth:  1,
			},
		},
		Drawable:               drawable,
		PresentWithTransaction: s.presentWithTransaction,
	}
	return &AcquiredSurfaceTexture{Texture: st}, nil
}

// nextDrawable requests a drawable inside an autorelease region so that
// objects the compositor creates per request do not pile up across frames.
// Must be called with s.mu held.
func (s *Surface) nextDrawable() (ca.Drawable, ca.Texture) {
	pool := s.compositor.PushPool()
	defer pool.Pop()

	d := s.layer.NextDrawable()
	if d == nil {
		return nil, nil
	}
	return d, d.Texture()
}

// DiscardTexture gives back a texture that will not be presented. The
// drawable and texture release themselves once unreferenced, so there is
// nothing to do.
func (s *Surface) DiscardTexture(t *SurfaceTexture) {}
