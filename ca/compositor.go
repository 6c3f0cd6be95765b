// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ca

// DeviceHandle is the native graphics device a surface layer renders with.
// For CAMetalLayer it is an id<MTLDevice>.
type DeviceHandle uintptr

// Layer is a node in the compositor's layer tree.
type Layer interface {
	// Bounds returns the layer bounds in points. The origin is always zero.
	Bounds() Rect

	// SetFrame moves and resizes the layer within its superlayer.
	SetFrame(frame Rect)

	// AddSublayer inserts child above the existing sublayers.
	AddSublayer(child Layer)

	// SetContentsGravity controls how contents are placed inside the bounds.
	SetContentsGravity(g Gravity)

	// ContentsScale returns the ratio of contents pixels to layer points.
	ContentsScale() float64

	// SetContentsScale changes the ratio of contents pixels to layer points.
	SetContentsScale(scale float64)
}

// SurfaceLayer is a Layer backed by a pool of presentable drawables.
//
// All setters program compositor state that stays in effect until it is
// set again. Some compositors ignore MaximumDrawableCount on certain OS and
// device combinations; that cannot be detected through this interface.
type SurfaceLayer interface {
	Layer

	SetDevice(device DeviceHandle)

	PixelFormat() PixelFormat
	SetPixelFormat(f PixelFormat)

	Opaque() bool
	SetOpaque(opaque bool)

	SetFramebufferOnly(framebufferOnly bool)
	SetPresentsWithTransaction(enabled bool)

	WantsExtendedDynamicRangeContent() bool
	SetWantsExtendedDynamicRangeContent(enabled bool)

	SetMaximumDrawableCount(n uint32)

	DrawableSize() Size
	SetDrawableSize(size Size)

	// SetAllowsNextDrawableTimeout toggles whether NextDrawable gives up
	// after an implementation-defined wait.
	SetAllowsNextDrawableTimeout(allowed bool)

	// SetDisplaySyncEnabled toggles presentation pacing to display refresh.
	SetDisplaySyncEnabled(enabled bool)

	// SetDelegate installs the hook the compositor consults before the
	// layer adopts a window's scale.
	SetDelegate(d ScaleDelegate)

	// NextDrawable blocks until a drawable is available and returns it, or
	// returns nil when the layer cannot produce one (invalidated, off screen,
	// timed out). The returned drawable is owned by the caller.
	NextDrawable() Drawable
}

// ScaleDelegate decides whether a layer adopts the contents scale of a
// window it is moved into.
type ScaleDelegate interface {
	// Name identifies the delegate in the compositor's runtime.
	Name() string

	ShouldInheritContentsScale(layer Layer, scale float64, from Window) bool
}

// Drawable is one presentable buffer of a SurfaceLayer.
type Drawable interface {
	// Texture returns the texture backing the drawable.
	Texture() Texture

	// Present queues the drawable for display and returns it to the layer.
	Present()
}

// Texture is the native texture behind a drawable.
type Texture interface {
	Width() uint32
	Height() uint32
	PixelFormat() PixelFormat
}

// View is a window-system view hosting a layer tree.
type View interface {
	// Layer returns the view's backing layer.
	Layer() Layer

	// Window returns the window the view is attached to, or nil.
	Window() Window

	// SetContentScaleFactor sets the view's point-to-pixel ratio.
	SetContentScaleFactor(scale float64)

	Retain()
	Release()
}

// Window is a top-level window.
type Window interface {
	BackingScaleFactor() float64
}

// Pool is an open autorelease region.
type Pool interface {
	// Pop reclaims every transient object created since the region opened.
	Pop()
}

// Compositor creates and classifies layers for one window system.
type Compositor interface {
	// SurfaceLayer reports whether l can present drawables and, if so,
	// returns it as a SurfaceLayer.
	SurfaceLayer(l Layer) (SurfaceLayer, bool)

	// NewSurfaceLayer creates a detached surface layer.
	NewSurfaceLayer() SurfaceLayer

	// MainScreenNativeScale returns the native scale of the main screen.
	// It may return a default value before the application has finished
	// launching.
	MainScreenNativeScale() float64

	// PushPool opens an autorelease region.
	PushPool() Pool
}
