// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build ios

package swapchain

var defaultProfile = TouchProfile
