// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swapchain

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/swapchain/ca"
)

// Configure programs the surface layer for config and moves the surface
// to the configured state. Calling it again reprograms the same layer;
// repeating a call with the same configuration leaves the layer unchanged.
//
// Two errors are possible, both returned before the surface or its layer
// is changed. A *ThreadAffinityError means a surface that resizes its
// layer to the view (TouchProfile) was configured from a goroutine other
// than the one that created it. ErrUnsupportedFormat means the device has
// no native pixel format for config.Format; a previous configuration, if
// any, stays in effect. Other malformed configurations are caller bugs and
// are not detected.
func (s *Surface) Configure(device Device, config *Configuration) error {
	Logger().Info("swapchain: build swapchain",
		"format", config.Format,
		"usage", config.Usage,
		"present_mode", config.PresentMode,
		"alpha_mode", config.CompositeAlphaMode,
		"width", config.Extent.Width,
		"height", config.Extent.Height,
		"swap_chain_size", config.SwapChainSize)

	if s.view != nil && s.profile.tracksViewFrame() {
		if err := s.checkOwner("Configure"); err != nil {
			return err
		}
	}

	caps := device.Capabilities()
	rawFormat := device.MapFormat(config.Format)
	if rawFormat == ca.PixelFormatInvalid {
		Logger().Warn("swapchain: format has no native pixel format", "format", config.Format)
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, config.Format)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.format = config.Format
	s.usage = config.Usage
	s.rawFormat = rawFormat
	s.extent = config.Extent

	layer := s.layer
	framebufferOnly := config.Usage == gputypes.TextureUsageRenderAttachment
	displaySync := config.PresentMode.displaySync()

	switch config.CompositeAlphaMode {
	case CompositeAlphaModeOpaque:
		layer.SetOpaque(true)
	case CompositeAlphaModePostMultiplied:
		layer.SetOpaque(false)
	case CompositeAlphaModePreMultiplied:
	}

	// A synthesized sublayer is not resized with its view, and the drawable
	// size says nothing about the layer size, so match the view explicitly.
	if s.view != nil && s.profile.tracksViewFrame() {
		layer.SetFrame(s.view.Layer().Bounds())
	}

	layer.SetDevice(device.Raw())
	layer.SetPixelFormat(rawFormat)
	layer.SetFramebufferOnly(framebufferOnly)
	layer.SetPresentsWithTransaction(s.presentWithTransaction)

	// Some compositors flash when EDR is toggled, so only flip it on change.
	if wantsEDR := rawFormat.ExtendedRange(); wantsEDR != layer.WantsExtendedDynamicRangeContent() {
		layer.SetWantsExtendedDynamicRangeContent(wantsEDR)
	}

	layer.SetMaximumDrawableCount(config.SwapChainSize)
	layer.SetDrawableSize(ca.Size{
		Width:  float64(config.Extent.Width),
		Height: float64(config.Extent.Height),
	})

	if caps.CanSetNextDrawableTimeout {
		layer.SetAllowsNextDrawableTimeout(false)
	}
	if caps.CanSetDisplaySync {
		layer.SetDisplaySyncEnabled(displaySync)
	}

	return nil
}

// Unconfigure returns the surface to the unconfigured state. The layer
// keeps its programmed state and stays bound to the device until the next
// Configure or until the surface is disposed.
func (s *Surface) Unconfigure(device Device) {
	s.mu.Lock()
	s.rawFormat = ca.PixelFormatInvalid
	s.mu.Unlock()
}
