// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build darwin

package metal

import (
	"errors"
	"sync"

	"github.com/ebitengine/purego/objc"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/swapchain"
	"github.com/gogpu/swapchain/ca"
)

// ErrNoDevice is returned when the system has no Metal device.
var ErrNoDevice = errors.New("metal: no system default device")

// Device is the system default id<MTLDevice>, usable with
// swapchain.Surface.Configure.
type Device struct {
	id   objc.ID
	caps swapchain.Capabilities

	mu        sync.Mutex
	destroyed bool
}

// SystemDefaultDevice returns the system's preferred Metal device.
func SystemDefaultDevice() (*Device, error) {
	if err := loadFrameworks(); err != nil {
		return nil, err
	}
	id := objc.ID(createSystemDevice())
	if id == 0 {
		return nil, ErrNoDevice
	}
	class := objc.ID(objc.GetClass("CAMetalLayer"))
	return &Device{
		id: id,
		caps: swapchain.Capabilities{
			CanSetNextDrawableTimeout: objc.Send[bool](class, selInstancesRespondTo, selSetAllowsNextDrawableTime),
			CanSetDisplaySync:         objc.Send[bool](class, selInstancesRespondTo, selSetDisplaySyncEnabled),
		},
	}, nil
}

// Poll is a no-op; Metal completes work without host polling.
func (d *Device) Poll(wait bool) {}

// Destroy releases the device. It is safe to call more than once.
func (d *Device) Destroy() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed {
		return
	}
	d.destroyed = true
	d.id.Send(selRelease)
}

func (d *Device) MapFormat(f gputypes.TextureFormat) ca.PixelFormat {
	return ca.MapFormat(f)
}

func (d *Device) Capabilities() swapchain.Capabilities { return d.caps }

func (d *Device) Raw() ca.DeviceHandle { return ca.DeviceHandle(d.id) }

var _ swapchain.Device = (*Device)(nil)
