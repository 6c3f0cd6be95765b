// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swapchain

import (
	"errors"
	"fmt"
)

// Contract violations. Constructors and Dispose panic with these values;
// they indicate a bug in the caller, not a runtime condition.
var (
	// ErrNilView is the panic value of FromView when no view is supplied.
	ErrNilView = errors.New("swapchain: window does not have a valid content view")

	// ErrNoViewLayer is the panic value of FromView when the view has no
	// backing layer to host a surface layer.
	ErrNoViewLayer = errors.New("swapchain: view has no backing layer")

	// ErrNotSurfaceLayer is the panic value of FromLayer when the layer
	// cannot present drawables.
	ErrNotSurfaceLayer = errors.New("swapchain: layer is not a surface layer")

	// ErrDisposed is the panic value of a second Dispose.
	ErrDisposed = errors.New("swapchain: surface already disposed")
)

// Errors returned at run time.
var (
	// ErrUnconfigured is returned by AcquireTexture before Configure or
	// after Unconfigure.
	ErrUnconfigured = errors.New("swapchain: surface is not configured")

	// ErrUnsupportedFormat is returned by Configure when the device cannot
	// present the requested texture format.
	ErrUnsupportedFormat = errors.New("swapchain: texture format has no native pixel format")

	// ErrThreadAffinity matches every *ThreadAffinityError via errors.Is.
	ErrThreadAffinity = errors.New("swapchain: wrong thread")
)

// ThreadAffinityError reports an operation that must run on the goroutine
// that created the surface.
type ThreadAffinityError struct {
	Op    string
	Owner int64
	Got   int64
}

func (e *ThreadAffinityError) Error() string {
	return fmt.Sprintf("swapchain: %s must run on goroutine %d (surface owner), called from goroutine %d",
		e.Op, e.Owner, e.Got)
}

// Is reports whether target is ErrThreadAffinity.
func (e *ThreadAffinityError) Is(target error) bool {
	return target == ErrThreadAffinity
}
