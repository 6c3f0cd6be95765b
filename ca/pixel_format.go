// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ca

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// PixelFormat is a native drawable pixel format. The numeric values match
// MTLPixelFormat so they can be handed to CAMetalLayer unchanged.
type PixelFormat uint32

// Native pixel formats a compositor layer can present.
const (
	PixelFormatInvalid        PixelFormat = 0
	PixelFormatRGBA8Unorm     PixelFormat = 70
	PixelFormatRGBA8UnormSRGB PixelFormat = 71
	PixelFormatBGRA8Unorm     PixelFormat = 80
	PixelFormatBGRA8UnormSRGB PixelFormat = 81
	PixelFormatRGB10A2Unorm   PixelFormat = 90
	PixelFormatRGBA16Float    PixelFormat = 115
)

var pixelFormatNames = map[PixelFormat]string{
	PixelFormatInvalid:        "Invalid",
	PixelFormatRGBA8Unorm:     "RGBA8Unorm",
	PixelFormatRGBA8UnormSRGB: "RGBA8Unorm_sRGB",
	PixelFormatBGRA8Unorm:     "BGRA8Unorm",
	PixelFormatBGRA8UnormSRGB: "BGRA8Unorm_sRGB",
	PixelFormatRGB10A2Unorm:   "RGB10A2Unorm",
	PixelFormatRGBA16Float:    "RGBA16Float",
}

// String returns the format name.
func (f PixelFormat) String() string {
	if name, ok := pixelFormatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("PixelFormat(%d)", uint32(f))
}

// ExtendedRange reports whether the format carries extended dynamic range
// content. Only half-float RGBA qualifies.
func (f PixelFormat) ExtendedRange() bool {
	return f == PixelFormatRGBA16Float
}

// FormatTable maps backend-agnostic texture formats to native pixel
// formats. Formats missing from the table map to PixelFormatInvalid.
type FormatTable map[gputypes.TextureFormat]PixelFormat

// DefaultFormatTable lists the formats every supported compositor layer
// accepts.
var DefaultFormatTable = FormatTable{
	gputypes.TextureFormatRGBA8Unorm:     PixelFormatRGBA8Unorm,
	gputypes.TextureFormatRGBA8UnormSrgb: PixelFormatRGBA8UnormSRGB,
	gputypes.TextureFormatBGRA8Unorm:     PixelFormatBGRA8Unorm,
	gputypes.TextureFormatBGRA8UnormSrgb: PixelFormatBGRA8UnormSRGB,
	gputypes.TextureFormatRGB10A2Unorm:   PixelFormatRGB10A2Unorm,
	gputypes.TextureFormatRGBA16Float:    PixelFormatRGBA16Float,
}

// Map returns the native format for f.
func (t FormatTable) Map(f gputypes.TextureFormat) PixelFormat {
	if pf, ok := t[f]; ok {
		return pf
	}
	return PixelFormatInvalid
}

// MapFormat maps f through DefaultFormatTable.
func MapFormat(f gputypes.TextureFormat) PixelFormat {
	return DefaultFormatTable.Map(f)
}
