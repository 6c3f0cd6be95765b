// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build darwin

package metal

import (
	"github.com/ebitengine/purego/objc"

	"github.com/gogpu/swapchain/ca"
)

// View wraps an NSView or UIView.
type View struct {
	id objc.ID
}

// NewView wraps a native view handle. The wrapper does not take a
// reference; the surface retains the view itself. NewView returns nil for
// a zero handle.
func NewView(handle uintptr) ca.View {
	if handle == 0 {
		return nil
	}
	mustLoadFrameworks()
	return &View{id: objc.ID(handle)}
}

func (v *View) objcID() objc.ID { return v.id }

// Layer returns the view's backing layer. An NSView that is not yet
// layer-backed is made so first.
func (v *View) Layer() ca.Layer {
	id := v.id.Send(selLayer)
	if id == 0 && respondsTo(v.id, selSetWantsLayer) {
		v.id.Send(selSetWantsLayer, true)
		id = v.id.Send(selLayer)
	}
	if id == 0 {
		return nil
	}
	return wrapLayer(id, true)
}

func (v *View) Window() ca.Window {
	id := v.id.Send(selWindow)
	if id == 0 {
		return nil
	}
	return &Window{id: id}
}

// SetContentScaleFactor sets a UIView's content scale. NSView has no such
// property, so the backing layer's contents scale is set instead.
func (v *View) SetContentScaleFactor(scale float64) {
	if respondsTo(v.id, selSetContentScaleFactor) {
		v.id.Send(selSetContentScaleFactor, scale)
		return
	}
	if l := v.id.Send(selLayer); l != 0 {
		l.Send(selSetContentsScale, scale)
	}
}

func (v *View) Retain()  { v.id.Send(selRetain) }
func (v *View) Release() { v.id.Send(selRelease) }

// Window wraps an NSWindow or UIWindow. It is only used transiently and
// holds no reference.
type Window struct {
	id objc.ID
}

func (w *Window) objcID() objc.ID { return w.id }

func (w *Window) BackingScaleFactor() float64 {
	return windowScale(w.id)
}

// Drawable wraps an id<CAMetalDrawable>.
type Drawable struct {
	id objc.ID
}

func wrapDrawable(id objc.ID) *Drawable {
	id.Send(selRetain)
	d := &Drawable{id: id}
	retained(d, id)
	return d
}

func (d *Drawable) objcID() objc.ID { return d.id }

func (d *Drawable) Texture() ca.Texture {
	id := d.id.Send(selTexture)
	if id == 0 {
		return nil
	}
	id.Send(selRetain)
	t := &Texture{id: id}
	retained(t, id)
	return t
}

func (d *Drawable) Present() {
	d.id.Send(selPresent)
}

// Texture wraps an id<MTLTexture>.
type Texture struct {
	id objc.ID
}

func (t *Texture) objcID() objc.ID { return t.id }

func (t *Texture) Width() uint32 {
	return uint32(objc.Send[uint64](t.id, selWidth))
}

func (t *Texture) Height() uint32 {
	return uint32(objc.Send[uint64](t.id, selHeight))
}

func (t *Texture) PixelFormat() ca.PixelFormat {
	return ca.PixelFormat(objc.Send[uint64](t.id, selPixelFormat))
}

var (
	_ ca.View     = (*View)(nil)
	_ ca.Window   = (*Window)(nil)
	_ ca.Drawable = (*Drawable)(nil)
	_ ca.Texture  = (*Texture)(nil)
)
