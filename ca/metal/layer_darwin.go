// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build darwin

package metal

import (
	"sync"

	"github.com/ebitengine/purego/objc"

	"github.com/gogpu/swapchain/ca"
)

var (
	gravityOnce    sync.Once
	gravityTopLeft objc.ID
	gravityResize  objc.ID
)

func gravityString(g ca.Gravity) objc.ID {
	gravityOnce.Do(func() {
		gravityTopLeft = stringConstant("kCAGravityTopLeft")
		gravityResize = stringConstant("kCAGravityResize")
	})
	if g == ca.GravityTopLeft {
		return gravityTopLeft
	}
	return gravityResize
}

// Layer wraps a CALayer.
type Layer struct {
	id objc.ID
}

// wrapLayer wraps id, retaining it first when the caller does not own a
// reference.
func wrapLayer(id objc.ID, retain bool) *Layer {
	if retain {
		id.Send(selRetain)
	}
	l := &Layer{id: id}
	retained(l, id)
	return l
}

func (l *Layer) objcID() objc.ID { return l.id }

func (l *Layer) Bounds() ca.Rect {
	r := objc.Send[cgRect](l.id, selBounds)
	return ca.NewRect(r.Origin.X, r.Origin.Y, r.Size.Width, r.Size.Height)
}

func (l *Layer) SetFrame(frame ca.Rect) {
	l.id.Send(selSetFrame, cgRect{
		Origin: cgPoint{X: frame.Origin.X, Y: frame.Origin.Y},
		Size:   cgSize{Width: frame.Size.Width, Height: frame.Size.Height},
	})
}

func (l *Layer) AddSublayer(child ca.Layer) {
	l.id.Send(selAddSublayer, idOf(child))
}

func (l *Layer) SetContentsGravity(g ca.Gravity) {
	l.id.Send(selSetContentsGravity, gravityString(g))
}

func (l *Layer) ContentsScale() float64 {
	return objc.Send[float64](l.id, selContentsScale)
}

func (l *Layer) SetContentsScale(scale float64) {
	l.id.Send(selSetContentsScale, scale)
}

// SurfaceLayer wraps a CAMetalLayer.
type SurfaceLayer struct {
	*Layer
}

func wrapSurfaceLayer(id objc.ID, retain bool) *SurfaceLayer {
	return &SurfaceLayer{Layer: wrapLayer(id, retain)}
}

func (l *SurfaceLayer) SetDevice(device ca.DeviceHandle) {
	l.id.Send(selSetDevice, objc.ID(device))
}

func (l *SurfaceLayer) PixelFormat() ca.PixelFormat {
	return ca.PixelFormat(objc.Send[uint64](l.id, selPixelFormat))
}

func (l *SurfaceLayer) SetPixelFormat(f ca.PixelFormat) {
	l.id.Send(selSetPixelFormat, uint64(f))
}

func (l *SurfaceLayer) Opaque() bool {
	return objc.Send[bool](l.id, selIsOpaque)
}

func (l *SurfaceLayer) SetOpaque(opaque bool) {
	l.id.Send(selSetOpaque, opaque)
}

func (l *SurfaceLayer) SetFramebufferOnly(framebufferOnly bool) {
	l.id.Send(selSetFramebufferOnly, framebufferOnly)
}

func (l *SurfaceLayer) SetPresentsWithTransaction(enabled bool) {
	l.id.Send(selSetPresentsWithTx, enabled)
}

func (l *SurfaceLayer) WantsExtendedDynamicRangeContent() bool {
	return objc.Send[bool](l.id, selWantsEDR)
}

func (l *SurfaceLayer) SetWantsExtendedDynamicRangeContent(enabled bool) {
	l.id.Send(selSetWantsEDR, enabled)
}

// SetMaximumDrawableCount accepts 2 or 3. Some iOS versions ignore it.
func (l *SurfaceLayer) SetMaximumDrawableCount(n uint32) {
	l.id.Send(selSetMaximumDrawableCount, uint64(n))
}

func (l *SurfaceLayer) DrawableSize() ca.Size {
	s := objc.Send[cgSize](l.id, selDrawableSize)
	return ca.Size{Width: s.Width, Height: s.Height}
}

func (l *SurfaceLayer) SetDrawableSize(size ca.Size) {
	l.id.Send(selSetDrawableSize, cgSize{Width: size.Width, Height: size.Height})
}

func (l *SurfaceLayer) SetAllowsNextDrawableTimeout(allowed bool) {
	l.id.Send(selSetAllowsNextDrawableTime, allowed)
}

func (l *SurfaceLayer) SetDisplaySyncEnabled(enabled bool) {
	l.id.Send(selSetDisplaySyncEnabled, enabled)
}

// SetDelegate installs the process-wide delegate object for d. CALayer
// does not retain its delegate; the object lives for the whole process.
func (l *SurfaceLayer) SetDelegate(d ca.ScaleDelegate) {
	l.id.Send(selSetDelegate, delegateObject(d))
}

// NextDrawable returns the next CAMetalDrawable, retained so that it
// survives the caller's autorelease pool.
func (l *SurfaceLayer) NextDrawable() ca.Drawable {
	id := l.id.Send(selNextDrawable)
	if id == 0 {
		return nil
	}
	return wrapDrawable(id)
}

var (
	_ ca.Layer        = (*Layer)(nil)
	_ ca.SurfaceLayer = (*SurfaceLayer)(nil)
)
