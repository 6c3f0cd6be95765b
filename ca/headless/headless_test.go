// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package headless

import (
	"image/color"
	"testing"
	"time"

	"github.com/gogpu/swapchain/ca"
)

func newConfiguredLayer(w, h float64, drawables uint32) *SurfaceLayer {
	l := NewSurfaceLayer()
	l.SetFrame(ca.NewRect(0, 0, w, h))
	l.SetDrawableSize(ca.Size{Width: w, Height: h})
	l.SetMaximumDrawableCount(drawables)
	return l
}

func TestCompositorSurfaceLayer(t *testing.T) {
	c := New()

	if _, ok := c.SurfaceLayer(NewLayer()); ok {
		t.Error("plain layer reported as surface layer")
	}
	if _, ok := c.SurfaceLayer(nil); ok {
		t.Error("nil layer reported as surface layer")
	}
	var typedNil *SurfaceLayer
	if sl, ok := c.SurfaceLayer(typedNil); ok || sl != nil {
		t.Errorf("typed nil: got (%v, %v), want (nil, false)", sl, ok)
	}

	sl := c.NewSurfaceLayer()
	got, ok := c.SurfaceLayer(sl)
	if !ok || got != sl {
		t.Errorf("SurfaceLayer(new layer) = (%v, %v), want (%v, true)", got, ok, sl)
	}
}

func TestCompositorPools(t *testing.T) {
	c := New()
	p1 := c.PushPool()
	p2 := c.PushPool()
	if got := c.OpenPools(); got != 2 {
		t.Fatalf("OpenPools() = %d, want 2", got)
	}
	p2.Pop()
	p2.Pop()
	p1.Pop()
	if got := c.OpenPools(); got != 0 {
		t.Errorf("OpenPools() = %d, want 0", got)
	}
	if got := c.PoolsPopped(); got != 2 {
		t.Errorf("PoolsPopped() = %d, want 2", got)
	}
}

func TestCompositorNativeScale(t *testing.T) {
	if got := New().MainScreenNativeScale(); got != 1 {
		t.Errorf("default native scale = %v, want 1", got)
	}
	if got := New(WithNativeScale(3)).MainScreenNativeScale(); got != 3 {
		t.Errorf("native scale = %v, want 3", got)
	}
	if got := New(WithNativeScale(-1)).MainScreenNativeScale(); got != 1 {
		t.Errorf("negative native scale = %v, want 1", got)
	}
}

func TestNextDrawableNoSize(t *testing.T) {
	l := NewSurfaceLayer()
	if d := l.NextDrawable(); d != nil {
		t.Errorf("NextDrawable() with zero drawable size = %v, want nil", d)
	}
}

func TestNextDrawableTexture(t *testing.T) {
	l := newConfiguredLayer(64, 32, 2)
	l.SetPixelFormat(ca.PixelFormatRGBA16Float)

	d := l.NextDrawable()
	if d == nil {
		t.Fatal("NextDrawable() = nil")
	}
	tex := d.Texture()
	if tex.Width() != 64 || tex.Height() != 32 {
		t.Errorf("texture size = %dx%d, want 64x32", tex.Width(), tex.Height())
	}
	if tex.PixelFormat() != ca.PixelFormatRGBA16Float {
		t.Errorf("texture format = %v, want RGBA16Float", tex.PixelFormat())
	}
	if got := l.InFlight(); got != 1 {
		t.Errorf("InFlight() = %d, want 1", got)
	}
	d.Present()
	d.Present()
	if got := l.InFlight(); got != 0 {
		t.Errorf("InFlight() after present = %d, want 0", got)
	}
	if got := l.PresentCount(); got != 1 {
		t.Errorf("PresentCount() = %d, want 1", got)
	}
}

func TestNextDrawableTimesOut(t *testing.T) {
	l := newConfiguredLayer(8, 8, 1)
	l.timeout = 20 * time.Millisecond

	first := l.NextDrawable()
	if first == nil {
		t.Fatal("first NextDrawable() = nil")
	}

	start := time.Now()
	if d := l.NextDrawable(); d != nil {
		t.Fatal("NextDrawable() with exhausted pool should time out")
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("timed out after %v, want >= 20ms", elapsed)
	}
	first.Present()
}

func TestNextDrawableBlocksUntilPresent(t *testing.T) {
	l := newConfiguredLayer(8, 8, 1)
	l.SetAllowsNextDrawableTimeout(false)

	first := l.NextDrawable()
	if first == nil {
		t.Fatal("first NextDrawable() = nil")
	}

	got := make(chan ca.Drawable)
	go func() { got <- l.NextDrawable() }()

	select {
	case <-got:
		t.Fatal("NextDrawable() returned while the pool was exhausted")
	case <-time.After(30 * time.Millisecond):
	}

	first.Present()

	select {
	case d := <-got:
		if d == nil {
			t.Fatal("NextDrawable() = nil after present")
		}
		d.Present()
	case <-time.After(5 * time.Second):
		t.Fatal("NextDrawable() did not wake after present")
	}
}

func TestInvalidateWakesWaiters(t *testing.T) {
	l := newConfiguredLayer(8, 8, 1)
	l.SetAllowsNextDrawableTimeout(false)
	first := l.NextDrawable()

	got := make(chan ca.Drawable)
	go func() { got <- l.NextDrawable() }()

	time.Sleep(10 * time.Millisecond)
	l.Invalidate()

	select {
	case d := <-got:
		if d != nil {
			t.Error("NextDrawable() after Invalidate should return nil")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Invalidate did not wake the waiter")
	}
	first.Present()
}

func TestPresentComposites(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}

	tests := []struct {
		name    string
		gravity ca.Gravity
		scale   float64
		// pixel expected to be red in the composited frame
		x, y int
	}{
		{"resize stretches", ca.GravityResize, 2, 15, 15},
		{"top-left keeps size", ca.GravityTopLeft, 2, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newConfiguredLayer(8, 8, 1)
			l.SetContentsScale(tt.scale)
			l.SetContentsGravity(tt.gravity)

			d := l.NextDrawable().(*Drawable)
			img := d.texture.Image()
			for y := 0; y < 8; y++ {
				for x := 0; x < 8; x++ {
					img.SetRGBA(x, y, red)
				}
			}
			d.Present()

			frame := l.Presented()
			if frame == nil {
				t.Fatal("Presented() = nil")
			}
			if frame.Rect.Dx() != 16 || frame.Rect.Dy() != 16 {
				t.Fatalf("frame size = %v, want 16x16", frame.Rect.Size())
			}
			if got := frame.RGBAAt(tt.x, tt.y); got.R < 250 || got.A < 250 || got.G != 0 {
				t.Errorf("pixel (%d,%d) = %v, want ~%v", tt.x, tt.y, got, red)
			}
			if tt.gravity == ca.GravityTopLeft {
				if got := frame.RGBAAt(12, 12); got.A != 0 {
					t.Errorf("pixel outside top-left contents = %v, want transparent", got)
				}
			}
		})
	}
}

type refuseScale struct{ asked int }

func (r *refuseScale) Name() string { return "refuse" }

func (r *refuseScale) ShouldInheritContentsScale(ca.Layer, float64, ca.Window) bool {
	r.asked++
	return false
}

func TestWindowScalePropagation(t *testing.T) {
	view := NewView(nil)
	plain := NewSurfaceLayer()
	guarded := NewSurfaceLayer()
	delegate := &refuseScale{}
	guarded.SetDelegate(delegate)
	view.Layer().AddSublayer(plain)
	view.Layer().AddSublayer(guarded)

	win := NewWindow(2)
	win.AddView(view)
	win.SetBackingScaleFactor(3)

	if got := view.Layer().ContentsScale(); got != 3 {
		t.Errorf("view layer scale = %v, want 3", got)
	}
	if got := plain.ContentsScale(); got != 3 {
		t.Errorf("undelegated sublayer scale = %v, want 3", got)
	}
	if got := guarded.ContentsScale(); got != 1 {
		t.Errorf("delegated sublayer scale = %v, want 1", got)
	}
	if delegate.asked != 2 {
		t.Errorf("delegate asked %d times, want 2", delegate.asked)
	}
	if view.Window() == nil {
		t.Error("view.Window() = nil after AddView")
	}
}

func TestViewRetainRelease(t *testing.T) {
	v := NewView(nil)
	v.Retain()
	if got := v.RetainCount(); got != 2 {
		t.Errorf("RetainCount() = %d, want 2", got)
	}
	v.Release()
	v.Release()
	defer func() {
		if recover() == nil {
			t.Error("over-release should panic")
		}
	}()
	v.Release()
}

func TestDetachedViewHasNoWindow(t *testing.T) {
	if w := NewView(nil).Window(); w != nil {
		t.Errorf("Window() = %v, want nil", w)
	}
}
