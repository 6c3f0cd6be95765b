// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swapchain

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/swapchain/ca"
)

// LayerDelegate stops a surface layer from adopting the contents scale of
// the window it is placed in. Without it the compositor silently rescales
// the layer whenever it is reparented, which breaks explicit drawable-size
// management.
//
// There is one delegate per process. It may be attached to any number of
// surfaces.
type LayerDelegate struct {
	name string
}

var (
	delegateOnce sync.Once

	// delegateRegistry is written once inside delegateOnce and only read
	// afterwards.
	delegateRegistry = map[string]*LayerDelegate{}

	delegateRegistrations atomic.Int32
)

// delegateName is stable for the life of the process and unique per copy
// of this package linked into it.
func delegateName() string {
	return fmt.Sprintf("SwapchainLayerDelegate@%p", &delegateOnce)
}

// NewLayerDelegate returns the process-wide layer delegate, registering it
// on first use. It is safe to call from any goroutine.
func NewLayerDelegate() *LayerDelegate {
	name := delegateName()
	delegateOnce.Do(func() {
		delegateRegistry[name] = &LayerDelegate{name: name}
		delegateRegistrations.Add(1)
		Logger().Debug("swapchain: registered layer delegate", "name", name)
	})
	return delegateRegistry[name]
}

// Name returns the registered delegate name.
func (d *LayerDelegate) Name() string {
	return d.name
}

// ShouldInheritContentsScale always returns false.
func (d *LayerDelegate) ShouldInheritContentsScale(ca.Layer, float64, ca.Window) bool {
	return false
}

var _ ca.ScaleDelegate = (*LayerDelegate)(nil)
