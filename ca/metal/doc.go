// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package metal implements package ca on Apple platforms with CAMetalLayer,
// NSView/UIView and the Objective-C runtime. It uses purego and needs no
// cgo.
//
// Views come from the windowing library as raw pointers:
//
//	view := metal.NewView(uintptr(window.GetCocoaWindow().ContentView()))
//	s := swapchain.FromView(metal.New(), view, swapchain.NewLayerDelegate())
//
// On other platforms the package is empty.
package metal
