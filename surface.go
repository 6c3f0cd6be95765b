// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swapchain

import (
	"sync"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/swapchain/ca"
	"github.com/gogpu/swapchain/internal/goid"
)

// Surface binds a compositor layer to a swapchain of drawable textures.
//
// A Surface starts unconfigured. Configure programs the layer, after which
// AcquireTexture hands out one drawable texture per frame. Unconfigure
// returns to the unconfigured state without touching the layer, and
// Dispose releases the view the surface was created from.
//
// Configure, Dimensions and AcquireTexture serialize on one lock per
// surface. AcquireTexture holds it while the compositor blocks, so a
// Configure issued from another goroutine waits for the acquisition to
// finish. Dispose is not synchronized: no other call may be in flight.
type Surface struct {
	compositor ca.Compositor
	view       ca.View
	profile    Profile

	// owner is the goroutine that created the surface.
	owner int64

	mu                     sync.Mutex
	layer                  ca.SurfaceLayer
	format                 gputypes.TextureFormat
	usage                  gputypes.TextureUsage
	rawFormat              ca.PixelFormat
	extent                 gputypes.Extent3D
	presentWithTransaction bool

	disposed bool
}

func newSurface(c ca.Compositor, view ca.View, layer ca.SurfaceLayer, o surfaceOptions) *Surface {
	return &Surface{
		compositor:             c,
		view:                   view,
		profile:                o.profile,
		owner:                  goid.Get(),
		layer:                  layer,
		rawFormat:              ca.PixelFormatInvalid,
		presentWithTransaction: o.presentWithTransaction,
	}
}

// FromView creates a surface presenting through view.
//
// If the view's layer is already a surface layer it is used as is.
// Otherwise a surface layer is created and added as a sublayer, matching
// the parent's bounds; the view's own layer is never replaced, because on
// some platforms that stops the view from receiving redraw notifications.
// The delegate, if not nil, is attached only to such a synthesized layer.
//
// FromView retains view until Dispose. It panics with ErrNilView if view
// is nil and with ErrNoViewLayer if the view has no backing layer.
func FromView(c ca.Compositor, view ca.View, delegate *LayerDelegate, opts ...Option) *Surface {
	if view == nil {
		panic(ErrNilView)
	}

	o := defaultSurfaceOptions()
	for _, opt := range opts {
		opt(&o)
	}

	mainLayer := view.Layer()
	if mainLayer == nil {
		panic(ErrNoViewLayer)
	}
	layer, ok := c.SurfaceLayer(mainLayer)
	if !ok {
		layer = c.NewSurfaceLayer()
		layer.SetFrame(mainLayer.Bounds())
		mainLayer.AddSublayer(layer)
		o.profile.initLayer(c, view, mainLayer, layer)
		if delegate != nil {
			layer.SetDelegate(delegate)
		}
		Logger().Debug("swapchain: synthesized surface layer",
			"profile", o.profile.Name(),
			"delegate", delegate != nil)
	}

	view.Retain()
	return newSurface(c, view, layer, o)
}

// FromLayer creates a surface presenting through an existing surface
// layer. No view is retained.
//
// It panics with ErrNotSurfaceLayer unless c recognizes layer as a
// surface layer.
func FromLayer(c ca.Compositor, layer ca.Layer, opts ...Option) *Surface {
	sl, ok := c.SurfaceLayer(layer)
	if !ok {
		panic(ErrNotSurfaceLayer)
	}

	o := defaultSurfaceOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newSurface(c, nil, sl, o)
}

// Dispose releases the retained view, if any. The surface must not be used
// afterwards; a second Dispose panics with ErrDisposed.
func (s *Surface) Dispose() {
	if s.disposed {
		panic(ErrDisposed)
	}
	s.disposed = true
	if s.view != nil {
		s.view.Release()
		s.view = nil
	}
}

// Dimensions returns the layer size in physical pixels: bounds times
// contents scale, rounded down, with a depth of one.
func (s *Surface) Dimensions() gputypes.Extent3D {
	s.mu.Lock()
	bounds := s.layer.Bounds()
	scale := s.layer.ContentsScale()
	s.mu.Unlock()

	w, h := bounds.Size.Scale(scale)
	return gputypes.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1}
}

// Layer returns the surface layer. The surface keeps using it for its
// whole lifetime.
func (s *Surface) Layer() ca.SurfaceLayer {
	return s.layer
}

// Profile returns the platform profile the surface was created with.
func (s *Surface) Profile() Profile {
	return s.profile
}

// Format returns the native pixel format programmed by the last
// Configure, or ca.PixelFormatInvalid when unconfigured.
func (s *Surface) Format() ca.PixelFormat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rawFormat
}

// Configured reports whether the surface is configured.
func (s *Surface) Configured() bool {
	return s.Format() != ca.PixelFormatInvalid
}

// SetPresentWithTransaction controls whether drawables are presented as
// part of a compositor transaction. It takes effect at the next Configure.
// Callers presenting with a transaction must wait until their command
// buffer is scheduled before calling SurfaceTexture.Present.
func (s *Surface) SetPresentWithTransaction(enabled bool) {
	s.mu.Lock()
	s.presentWithTransaction = enabled
	s.mu.Unlock()
}

// PresentWithTransaction reports the presents-with-transaction flag.
func (s *Surface) PresentWithTransaction() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.presentWithTransaction
}

// checkOwner returns a *ThreadAffinityError unless called from the
// goroutine that created s.
func (s *Surface) checkOwner(op string) error {
	if got := goid.Get(); got != s.owner {
		return &ThreadAffinityError{Op: op, Owner: s.owner, Got: got}
	}
	return nil
}
