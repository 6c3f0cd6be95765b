// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package swapchain

// Option configures a Surface during construction.
//
// Example:
//
//	s := swapchain.FromLayer(comp, layer,
//	    swapchain.WithProfile(swapchain.TouchProfile),
//	    swapchain.WithPresentWithTransaction(true))
type Option func(*surfaceOptions)

type surfaceOptions struct {
	profile                Profile
	presentWithTransaction bool
}

func defaultSurfaceOptions() surfaceOptions {
	return surfaceOptions{
		profile: DefaultProfile(),
	}
}

// WithProfile selects the platform profile instead of the one chosen at
// build time. A nil profile is ignored.
func WithProfile(p Profile) Option {
	return func(o *surfaceOptions) {
		if p != nil {
			o.profile = p
		}
	}
}

// WithPresentWithTransaction sets the initial presents-with-transaction
// flag. See Surface.SetPresentWithTransaction.
func WithPresentWithTransaction(enabled bool) Option {
	return func(o *surfaceOptions) {
		o.presentWithTransaction = enabled
	}
}
