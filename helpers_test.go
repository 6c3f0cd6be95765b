// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swapchain_test

import (
	"testing"
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/swapchain"
	"github.com/gogpu/swapchain/ca"
	"github.com/gogpu/swapchain/ca/headless"
)

// mockDevice implements swapchain.Device for testing.
type mockDevice struct {
	caps   swapchain.Capabilities
	raw    ca.DeviceHandle
	mapped int
}

func newMockDevice() *mockDevice {
	return &mockDevice{
		caps: swapchain.Capabilities{CanSetNextDrawableTimeout: true, CanSetDisplaySync: true},
		raw:  0xd00d,
	}
}

func (m *mockDevice) Poll(wait bool) {}
func (m *mockDevice) Destroy()       {}

func (m *mockDevice) MapFormat(f gputypes.TextureFormat) ca.PixelFormat {
	m.mapped++
	return ca.MapFormat(f)
}

func (m *mockDevice) Capabilities() swapchain.Capabilities { return m.caps }
func (m *mockDevice) Raw() ca.DeviceHandle                 { return m.raw }

// mockQueue implements gpucontext.Queue for testing.
type mockQueue struct{}

// mockAdapter implements gpucontext.Adapter for testing.
type mockAdapter struct{}

// mockProvider implements gpucontext.DeviceProvider for testing.
type mockProvider struct {
	device gpucontext.Device
	format gputypes.TextureFormat
}

func (m *mockProvider) Device() gpucontext.Device             { return m.device }
func (m *mockProvider) Queue() gpucontext.Queue               { return &mockQueue{} }
func (m *mockProvider) Adapter() gpucontext.Adapter           { return &mockAdapter{} }
func (m *mockProvider) SurfaceFormat() gputypes.TextureFormat { return m.format }
func (m *mockProvider) AdapterInfo() gpucontext.AdapterInfo   { return gpucontext.AdapterInfo{} }

var (
	_ swapchain.Device          = (*mockDevice)(nil)
	_ gpucontext.DeviceProvider = (*mockProvider)(nil)
)

func testConfig(format gputypes.TextureFormat, w, h uint32) *swapchain.Configuration {
	return &swapchain.Configuration{
		Format:             format,
		Usage:              gputypes.TextureUsageRenderAttachment,
		PresentMode:        swapchain.PresentModeFifo,
		CompositeAlphaMode: swapchain.CompositeAlphaModeOpaque,
		Extent:             gputypes.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		SwapChainSize:      3,
	}
}

// newLayerSurface returns a surface over a w×h point layer at the given
// scale.
func newLayerSurface(t *testing.T, w, h, scale float64, opts ...swapchain.Option) (*swapchain.Surface, *headless.SurfaceLayer, *headless.Compositor) {
	t.Helper()
	comp := headless.New()
	layer := headless.NewSurfaceLayer()
	layer.SetFrame(ca.NewRect(0, 0, w, h))
	layer.SetContentsScale(scale)
	return swapchain.FromLayer(comp, layer, opts...), layer, comp
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}

func mustPanic(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v", want)
		}
		if err, ok := r.(error); !ok || err != want {
			t.Fatalf("panic value = %v, want %v", r, want)
		}
	}()
	fn()
}
