// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swapchain

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// PresentMode selects how presented frames are paced to the display.
type PresentMode uint8

const (
	// PresentModeFifo waits for vertical blank. Always supported.
	PresentModeFifo PresentMode = iota

	// PresentModeFifoRelaxed waits for vertical blank unless the frame is late.
	PresentModeFifoRelaxed

	// PresentModeMailbox replaces the queued frame without tearing.
	PresentModeMailbox

	// PresentModeImmediate presents as soon as possible and may tear.
	PresentModeImmediate
)

// String returns the mode name.
func (m PresentMode) String() string {
	switch m {
	case PresentModeFifo:
		return "Fifo"
	case PresentModeFifoRelaxed:
		return "FifoRelaxed"
	case PresentModeMailbox:
		return "Mailbox"
	case PresentModeImmediate:
		return "Immediate"
	default:
		return fmt.Sprintf("PresentMode(%d)", uint8(m))
	}
}

// displaySync reports whether the mode paces presentation to the display.
func (m PresentMode) displaySync() bool {
	return m != PresentModeImmediate
}

// CompositeAlphaMode selects how the compositor blends the surface with
// what is behind it.
type CompositeAlphaMode uint8

const (
	// CompositeAlphaModeOpaque ignores the alpha channel.
	CompositeAlphaModeOpaque CompositeAlphaMode = iota

	// CompositeAlphaModePreMultiplied expects color already multiplied by alpha.
	CompositeAlphaModePreMultiplied

	// CompositeAlphaModePostMultiplied expects straight alpha.
	CompositeAlphaModePostMultiplied
)

// String returns the mode name.
func (m CompositeAlphaMode) String() string {
	switch m {
	case CompositeAlphaModeOpaque:
		return "Opaque"
	case CompositeAlphaModePreMultiplied:
		return "PreMultiplied"
	case CompositeAlphaModePostMultiplied:
		return "PostMultiplied"
	default:
		return fmt.Sprintf("CompositeAlphaMode(%d)", uint8(m))
	}
}

// Configuration describes the swapchain a Surface should present through.
// It is supplied by the caller and not retained by the surface.
type Configuration struct {
	// Format is the texture format of acquired textures.
	Format gputypes.TextureFormat

	// Usage is how acquired textures will be used. A pure render
	// attachment lets the compositor skip sampling support.
	Usage gputypes.TextureUsage

	PresentMode        PresentMode
	CompositeAlphaMode CompositeAlphaMode

	// Extent is the drawable size in pixels. DepthOrArrayLayers is ignored.
	Extent gputypes.Extent3D

	// SwapChainSize is the maximum number of drawables in flight. Some
	// OS/device combinations ignore it.
	SwapChainSize uint32
}

// DefaultSwapChainSize is the drawable count used by NewConfiguration.
const DefaultSwapChainSize = 3

// NewConfiguration returns a FIFO, opaque, triple-buffered configuration
// of width×height pixels in the provider's preferred surface format.
//
// Example:
//
//	cfg := swapchain.NewConfiguration(provider, 1600, 1200)
//	if err := s.Configure(device, cfg); err != nil {
//	    return err
//	}
func NewConfiguration(provider gpucontext.DeviceProvider, width, height uint32) *Configuration {
	format := gputypes.TextureFormatBGRA8Unorm
	if provider != nil {
		if f := provider.SurfaceFormat(); f != gputypes.TextureFormatUndefined {
			format = f
		}
	}
	return &Configuration{
		Format:             format,
		Usage:              gputypes.TextureUsageRenderAttachment,
		PresentMode:        PresentModeFifo,
		CompositeAlphaMode: CompositeAlphaModeOpaque,
		Extent:             gputypes.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
		SwapChainSize:      DefaultSwapChainSize,
	}
}
