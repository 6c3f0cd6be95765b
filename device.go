// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swapchain

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/swapchain/ca"
)

// Capabilities lists the optional layer controls a device's platform
// supports.
type Capabilities struct {
	// CanSetNextDrawableTimeout reports that the layer's next-drawable
	// timeout can be switched off.
	CanSetNextDrawableTimeout bool

	// CanSetDisplaySync reports that display sync can be toggled.
	CanSetDisplaySync bool
}

// Device is the part of a graphics device a Surface uses while
// configuring.
type Device interface {
	gpucontext.Device

	// MapFormat returns the native pixel format for f, or
	// ca.PixelFormatInvalid if the device cannot present it.
	MapFormat(f gputypes.TextureFormat) ca.PixelFormat

	// Capabilities returns the optional layer controls available.
	Capabilities() Capabilities

	// Raw returns the native device to bind layers to.
	Raw() ca.DeviceHandle
}
