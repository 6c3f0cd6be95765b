// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package headless

import (
	"sync"

	"github.com/gogpu/swapchain/ca"
)

// View is a headless view with a retain count.
type View struct {
	mu           sync.Mutex
	layer        ca.Layer
	window       *Window
	contentScale float64
	retains      int
}

// NewView creates a view backed by layer. A nil layer gives the view a
// plain *Layer, like a layer-backed NSView.
func NewView(layer ca.Layer) *View {
	if layer == nil {
		layer = NewLayer()
	}
	return &View{layer: layer, contentScale: 1, retains: 1}
}

func (v *View) Layer() ca.Layer {
	return v.layer
}

// Window returns the window the view was added to, or nil.
func (v *View) Window() ca.Window {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.window == nil {
		return nil
	}
	return v.window
}

// SetFrame resizes the view's backing layer. Sublayers are not resized.
func (v *View) SetFrame(frame ca.Rect) {
	v.layer.SetFrame(frame)
}

// SetContentScaleFactor sets the scale of the view and its backing layer.
func (v *View) SetContentScaleFactor(scale float64) {
	v.mu.Lock()
	v.contentScale = scale
	v.mu.Unlock()
	v.layer.SetContentsScale(scale)
}

// ContentScaleFactor returns the view's scale.
func (v *View) ContentScaleFactor() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.contentScale
}

func (v *View) Retain() {
	v.mu.Lock()
	v.retains++
	v.mu.Unlock()
}

// Release drops one reference. Releasing a view with no references
// panics, as over-releasing does in the real runtime.
func (v *View) Release() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.retains == 0 {
		panic("headless: view over-released")
	}
	v.retains--
}

// RetainCount returns the current reference count. A new view starts at 1.
func (v *View) RetainCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.retains
}

// Window is a headless window.
type Window struct {
	mu    sync.Mutex
	scale float64
	views []*View
}

// NewWindow creates a window with the given backing scale factor.
func NewWindow(scale float64) *Window {
	return &Window{scale: scale}
}

func (w *Window) BackingScaleFactor() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.scale
}

// AddView attaches v to the window. The view's layer tree takes the
// window's scale unless a layer's delegate refuses it.
func (w *Window) AddView(v *View) {
	w.mu.Lock()
	w.views = append(w.views, v)
	scale := w.scale
	w.mu.Unlock()

	v.mu.Lock()
	v.window = w
	v.mu.Unlock()

	propagateScale(v.layer, scale, w)
}

// SetBackingScaleFactor changes the window scale, as when the window moves
// to another display, and propagates it through every attached view.
func (w *Window) SetBackingScaleFactor(scale float64) {
	w.mu.Lock()
	w.scale = scale
	views := append([]*View(nil), w.views...)
	w.mu.Unlock()

	for _, v := range views {
		propagateScale(v.layer, scale, w)
	}
}

var (
	_ ca.View   = (*View)(nil)
	_ ca.Window = (*Window)(nil)
)
