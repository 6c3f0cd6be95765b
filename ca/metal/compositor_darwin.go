// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build darwin

package metal

import (
	"github.com/ebitengine/purego/objc"

	"github.com/gogpu/swapchain/ca"
)

// object is implemented by every wrapper in this package.
type object interface {
	objcID() objc.ID
}

func idOf(v any) objc.ID {
	if o, ok := v.(object); ok {
		return o.objcID()
	}
	return 0
}

// Compositor is the Core Animation ca.Compositor.
type Compositor struct {
	classMetalLayer objc.Class
}

// New loads the system frameworks and returns the compositor. It panics
// if they cannot be loaded.
func New() *Compositor {
	mustLoadFrameworks()
	return &Compositor{classMetalLayer: objc.GetClass("CAMetalLayer")}
}

// SurfaceLayer reports whether l is a CAMetalLayer.
func (c *Compositor) SurfaceLayer(l ca.Layer) (ca.SurfaceLayer, bool) {
	if sl, ok := l.(*SurfaceLayer); ok && sl != nil {
		return sl, true
	}
	id := idOf(l)
	if id == 0 {
		return nil, false
	}
	if !objc.Send[bool](id, selIsKindOfClass, objc.ID(c.classMetalLayer)) {
		return nil, false
	}
	return wrapSurfaceLayer(id, true), true
}

// NewSurfaceLayer creates a CAMetalLayer.
func (c *Compositor) NewSurfaceLayer() ca.SurfaceLayer {
	return wrapSurfaceLayer(objc.ID(c.classMetalLayer).Send(selNew), false)
}

// MainScreenNativeScale returns the main screen's scale, or 1 when there
// is no screen yet.
func (c *Compositor) MainScreenNativeScale() float64 {
	return mainScreenScale()
}

// PushPool opens an Objective-C autorelease pool.
func (c *Compositor) PushPool() ca.Pool {
	return autoreleasePool(autoreleasePoolPush())
}

type autoreleasePool uintptr

func (p autoreleasePool) Pop() {
	autoreleasePoolPop(uintptr(p))
}

var _ ca.Compositor = (*Compositor)(nil)
