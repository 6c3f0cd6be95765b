// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package headless is an in-memory compositor implementing package ca.
//
// It models the parts of a real compositor that a swapchain depends on:
// a bounded pool of drawables per surface layer, a blocking NextDrawable
// that waits for presented drawables to be reclaimed, window scale
// propagation through the layer tree, and autorelease regions. Presented
// drawables are composited into an *image.RGBA per layer, which makes the
// package usable for tests and for rendering without a window system.
//
// Example:
//
//	comp := headless.New(headless.WithNativeScale(2))
//	win := headless.NewWindow(2)
//	view := headless.NewView(nil)
//	view.SetFrame(ca.NewRect(0, 0, 800, 600))
//	win.AddView(view)
//
//	s := swapchain.FromView(comp, view, swapchain.NewLayerDelegate())
package headless

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/swapchain/ca"
)

// DefaultDrawableTimeout is how long NextDrawable waits for a free drawable
// when the layer allows timeouts. CAMetalLayer uses the same one second.
const DefaultDrawableTimeout = time.Second

// Option configures a Compositor.
type Option func(*options)

type options struct {
	nativeScale     float64
	drawableTimeout time.Duration
}

// WithNativeScale sets the main screen's native scale. Values <= 0 are
// ignored.
func WithNativeScale(scale float64) Option {
	return func(o *options) {
		if scale > 0 {
			o.nativeScale = scale
		}
	}
}

// WithDrawableTimeout sets the NextDrawable timeout of layers created by
// the compositor.
func WithDrawableTimeout(d time.Duration) Option {
	return func(o *options) {
		o.drawableTimeout = d
	}
}

// Compositor is an in-memory ca.Compositor.
type Compositor struct {
	opts options

	pushed atomic.Int64
	popped atomic.Int64
}

// New creates a compositor. The main screen scale defaults to 1.
func New(opts ...Option) *Compositor {
	o := options{
		nativeScale:     1,
		drawableTimeout: DefaultDrawableTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Compositor{opts: o}
}

// SurfaceLayer reports whether l is a *SurfaceLayer.
func (c *Compositor) SurfaceLayer(l ca.Layer) (ca.SurfaceLayer, bool) {
	sl, ok := l.(*SurfaceLayer)
	if !ok || sl == nil {
		return nil, false
	}
	return sl, true
}

// NewSurfaceLayer creates a surface layer using the compositor's drawable
// timeout.
func (c *Compositor) NewSurfaceLayer() ca.SurfaceLayer {
	sl := NewSurfaceLayer()
	sl.timeout = c.opts.drawableTimeout
	return sl
}

// MainScreenNativeScale returns the configured native scale.
func (c *Compositor) MainScreenNativeScale() float64 {
	return c.opts.nativeScale
}

// PushPool opens an autorelease region.
func (c *Compositor) PushPool() ca.Pool {
	c.pushed.Add(1)
	return &pool{c: c}
}

// OpenPools returns the number of regions pushed but not yet popped.
func (c *Compositor) OpenPools() int64 {
	return c.pushed.Load() - c.popped.Load()
}

// PoolsPopped returns the number of regions popped so far.
func (c *Compositor) PoolsPopped() int64 {
	return c.popped.Load()
}

type pool struct {
	c    *Compositor
	once sync.Once
}

func (p *pool) Pop() {
	p.once.Do(func() {
		p.c.popped.Add(1)
	})
}

var _ ca.Compositor = (*Compositor)(nil)
