// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package headless

import (
	"image"
	"runtime"
	"sync"
	"time"

	"golang.org/x/image/draw"

	"github.com/gogpu/swapchain/ca"
)

// scaleNode is implemented by layers that follow window scale changes.
type scaleNode interface {
	inheritScale(scale float64, from ca.Window)
}

func propagateScale(l ca.Layer, scale float64, from ca.Window) {
	if n, ok := l.(scaleNode); ok {
		n.inheritScale(scale, from)
	}
}

// Layer is a plain layer with no drawable pool.
type Layer struct {
	mu        sync.Mutex
	frame     ca.Rect
	scale     float64
	gravity   ca.Gravity
	sublayers []ca.Layer
}

// NewLayer creates a layer with an empty frame and a contents scale of 1.
func NewLayer() *Layer {
	return &Layer{scale: 1}
}

func (l *Layer) Bounds() ca.Rect {
	l.mu.Lock()
	defer l.mu.Unlock()
	return ca.Rect{Size: l.frame.Size}
}

// Frame returns the layer frame in superlayer coordinates.
func (l *Layer) Frame() ca.Rect {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frame
}

// SetFrame resizes the layer. Sublayers keep their frames.
func (l *Layer) SetFrame(frame ca.Rect) {
	l.mu.Lock()
	l.frame = frame
	l.mu.Unlock()
}

func (l *Layer) AddSublayer(child ca.Layer) {
	l.mu.Lock()
	l.sublayers = append(l.sublayers, child)
	l.mu.Unlock()
}

// Sublayers returns a copy of the sublayer list.
func (l *Layer) Sublayers() []ca.Layer {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]ca.Layer(nil), l.sublayers...)
}

func (l *Layer) SetContentsGravity(g ca.Gravity) {
	l.mu.Lock()
	l.gravity = g
	l.mu.Unlock()
}

// ContentsGravity returns the current contents gravity.
func (l *Layer) ContentsGravity() ca.Gravity {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gravity
}

func (l *Layer) ContentsScale() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.scale
}

func (l *Layer) SetContentsScale(scale float64) {
	l.mu.Lock()
	l.scale = scale
	l.mu.Unlock()
}

func (l *Layer) inheritScale(scale float64, from ca.Window) {
	l.SetContentsScale(scale)
	for _, child := range l.Sublayers() {
		propagateScale(child, scale, from)
	}
}

// SurfaceLayer is an in-memory CAMetalLayer.
//
// It hands out at most MaximumDrawableCount drawables at a time. A drawable
// returns to the pool when it is presented, or when it becomes unreachable
// without being presented.
type SurfaceLayer struct {
	*Layer

	smu  sync.Mutex
	cond *sync.Cond

	device                  ca.DeviceHandle
	pixelFormat             ca.PixelFormat
	opaque                  bool
	framebufferOnly         bool
	presentsWithTransaction bool
	edr                     bool
	edrToggles              int
	maxDrawables            uint32
	drawableSize            ca.Size
	allowsTimeout           bool
	displaySync             bool
	delegate                ca.ScaleDelegate
	timeout                 time.Duration

	inFlight  uint32
	invalid   bool
	requests  int
	presents  int
	presented *image.RGBA
}

// NewSurfaceLayer creates a surface layer with CAMetalLayer's defaults:
// BGRA8Unorm, three drawables, framebuffer-only, timeouts allowed and
// display sync on.
func NewSurfaceLayer() *SurfaceLayer {
	l := &SurfaceLayer{
		Layer:           NewLayer(),
		pixelFormat:     ca.PixelFormatBGRA8Unorm,
		framebufferOnly: true,
		maxDrawables:    3,
		allowsTimeout:   true,
		displaySync:     true,
		timeout:         DefaultDrawableTimeout,
	}
	l.cond = sync.NewCond(&l.smu)
	return l
}

func (l *SurfaceLayer) inheritScale(scale float64, from ca.Window) {
	l.smu.Lock()
	d := l.delegate
	l.smu.Unlock()

	if d == nil || d.ShouldInheritContentsScale(l, scale, from) {
		l.Layer.SetContentsScale(scale)
	}
	for _, child := range l.Sublayers() {
		propagateScale(child, scale, from)
	}
}

func (l *SurfaceLayer) SetDevice(device ca.DeviceHandle) {
	l.smu.Lock()
	l.device = device
	l.smu.Unlock()
}

// Device returns the device the layer is bound to.
func (l *SurfaceLayer) Device() ca.DeviceHandle {
	l.smu.Lock()
	defer l.smu.Unlock()
	return l.device
}

func (l *SurfaceLayer) PixelFormat() ca.PixelFormat {
	l.smu.Lock()
	defer l.smu.Unlock()
	return l.pixelFormat
}

func (l *SurfaceLayer) SetPixelFormat(f ca.PixelFormat) {
	l.smu.Lock()
	l.pixelFormat = f
	l.smu.Unlock()
}

func (l *SurfaceLayer) Opaque() bool {
	l.smu.Lock()
	defer l.smu.Unlock()
	return l.opaque
}

func (l *SurfaceLayer) SetOpaque(opaque bool) {
	l.smu.Lock()
	l.opaque = opaque
	l.smu.Unlock()
}

// FramebufferOnly reports the framebuffer-only flag.
func (l *SurfaceLayer) FramebufferOnly() bool {
	l.smu.Lock()
	defer l.smu.Unlock()
	return l.framebufferOnly
}

func (l *SurfaceLayer) SetFramebufferOnly(framebufferOnly bool) {
	l.smu.Lock()
	l.framebufferOnly = framebufferOnly
	l.smu.Unlock()
}

// PresentsWithTransaction reports the presents-with-transaction flag.
func (l *SurfaceLayer) PresentsWithTransaction() bool {
	l.smu.Lock()
	defer l.smu.Unlock()
	return l.presentsWithTransaction
}

func (l *SurfaceLayer) SetPresentsWithTransaction(enabled bool) {
	l.smu.Lock()
	l.presentsWithTransaction = enabled
	l.smu.Unlock()
}

func (l *SurfaceLayer) WantsExtendedDynamicRangeContent() bool {
	l.smu.Lock()
	defer l.smu.Unlock()
	return l.edr
}

// SetWantsExtendedDynamicRangeContent records every call, including ones
// that do not change the value, so callers can be checked for redundant
// toggles.
func (l *SurfaceLayer) SetWantsExtendedDynamicRangeContent(enabled bool) {
	l.smu.Lock()
	l.edr = enabled
	l.edrToggles++
	l.smu.Unlock()
}

// EDRToggles returns how many times the EDR flag has been set.
func (l *SurfaceLayer) EDRToggles() int {
	l.smu.Lock()
	defer l.smu.Unlock()
	return l.edrToggles
}

// SetMaximumDrawableCount sets the pool size. Zero is treated as one.
func (l *SurfaceLayer) SetMaximumDrawableCount(n uint32) {
	if n == 0 {
		n = 1
	}
	l.smu.Lock()
	l.maxDrawables = n
	l.cond.Broadcast()
	l.smu.Unlock()
}

// MaximumDrawableCount returns the pool size.
func (l *SurfaceLayer) MaximumDrawableCount() uint32 {
	l.smu.Lock()
	defer l.smu.Unlock()
	return l.maxDrawables
}

func (l *SurfaceLayer) DrawableSize() ca.Size {
	l.smu.Lock()
	defer l.smu.Unlock()
	return l.drawableSize
}

func (l *SurfaceLayer) SetDrawableSize(size ca.Size) {
	l.smu.Lock()
	l.drawableSize = size
	l.smu.Unlock()
}

func (l *SurfaceLayer) SetAllowsNextDrawableTimeout(allowed bool) {
	l.smu.Lock()
	l.allowsTimeout = allowed
	l.smu.Unlock()
}

// AllowsNextDrawableTimeout reports whether NextDrawable may time out.
func (l *SurfaceLayer) AllowsNextDrawableTimeout() bool {
	l.smu.Lock()
	defer l.smu.Unlock()
	return l.allowsTimeout
}

func (l *SurfaceLayer) SetDisplaySyncEnabled(enabled bool) {
	l.smu.Lock()
	l.displaySync = enabled
	l.smu.Unlock()
}

// DisplaySyncEnabled reports whether presentation is paced to the display.
func (l *SurfaceLayer) DisplaySyncEnabled() bool {
	l.smu.Lock()
	defer l.smu.Unlock()
	return l.displaySync
}

func (l *SurfaceLayer) SetDelegate(d ca.ScaleDelegate) {
	l.smu.Lock()
	l.delegate = d
	l.smu.Unlock()
}

// Delegate returns the installed scale delegate, or nil.
func (l *SurfaceLayer) Delegate() ca.ScaleDelegate {
	l.smu.Lock()
	defer l.smu.Unlock()
	return l.delegate
}

// Invalidate makes every pending and future NextDrawable return nil, as
// when the layer's window closes.
func (l *SurfaceLayer) Invalidate() {
	l.smu.Lock()
	l.invalid = true
	l.cond.Broadcast()
	l.smu.Unlock()
}

// InFlight returns the number of drawables handed out and not yet
// reclaimed.
func (l *SurfaceLayer) InFlight() uint32 {
	l.smu.Lock()
	defer l.smu.Unlock()
	return l.inFlight
}

// Requests returns the number of NextDrawable calls.
func (l *SurfaceLayer) Requests() int {
	l.smu.Lock()
	defer l.smu.Unlock()
	return l.requests
}

// PresentCount returns the number of presented drawables.
func (l *SurfaceLayer) PresentCount() int {
	l.smu.Lock()
	defer l.smu.Unlock()
	return l.presents
}

// Presented returns the last composited frame, or nil before the first
// present. The image is sized bounds × contents scale.
func (l *SurfaceLayer) Presented() *image.RGBA {
	l.smu.Lock()
	defer l.smu.Unlock()
	return l.presented
}

// NextDrawable blocks until a drawable is free. It returns nil when the
// layer is invalidated, has no drawable size, or the timeout expires while
// timeouts are allowed.
func (l *SurfaceLayer) NextDrawable() ca.Drawable {
	l.smu.Lock()
	defer l.smu.Unlock()

	l.requests++
	w, h := l.drawableSize.Scale(1)
	if w == 0 || h == 0 {
		return nil
	}

	var deadline time.Time
	if l.allowsTimeout {
		deadline = time.Now().Add(l.timeout)
		t := time.AfterFunc(l.timeout, func() {
			l.smu.Lock()
			l.cond.Broadcast()
			l.smu.Unlock()
		})
		defer t.Stop()
	}

	for !l.invalid && l.inFlight >= l.maxDrawables {
		if l.allowsTimeout && !time.Now().Before(deadline) {
			return nil
		}
		l.cond.Wait()
	}
	if l.invalid {
		return nil
	}

	l.inFlight++
	s := &slot{layer: l}
	d := &Drawable{
		slot: s,
		texture: &Texture{
			img:    image.NewRGBA(image.Rect(0, 0, int(w), int(h))),
			format: l.pixelFormat,
		},
	}
	runtime.AddCleanup(d, func(s *slot) { s.release() }, s)
	return d
}

// present composites tex into the layer's frame. Must not be called with
// smu held.
func (l *SurfaceLayer) present(tex *Texture) {
	bounds := l.Bounds()
	scale := l.ContentsScale()
	gravity := l.ContentsGravity()

	w, h := bounds.Size.Scale(scale)
	var dst *image.RGBA
	if w > 0 && h > 0 {
		dst = image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
		if gravity == ca.GravityTopLeft {
			draw.Draw(dst, dst.Bounds(), tex.img, image.Point{}, draw.Src)
		} else {
			draw.ApproxBiLinear.Scale(dst, dst.Bounds(), tex.img, tex.img.Bounds(), draw.Src, nil)
		}
	}

	l.smu.Lock()
	l.presents++
	if dst != nil {
		l.presented = dst
	}
	l.smu.Unlock()
}

func (l *SurfaceLayer) reclaim() {
	l.smu.Lock()
	if l.inFlight > 0 {
		l.inFlight--
	}
	l.cond.Broadcast()
	l.smu.Unlock()
}

var (
	_ ca.Layer        = (*Layer)(nil)
	_ ca.SurfaceLayer = (*SurfaceLayer)(nil)
)
