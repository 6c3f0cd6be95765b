// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build darwin

package metal

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/ebitengine/purego/objc"
)

// cgRect and cgSize mirror CoreGraphics' structs. CGFloat is a double on
// every supported architecture.
type cgPoint struct{ X, Y float64 }

type cgSize struct{ Width, Height float64 }

type cgRect struct {
	Origin cgPoint
	Size   cgSize
}

var (
	selAlloc                     = objc.RegisterName("alloc")
	selNew                       = objc.RegisterName("new")
	selInit                      = objc.RegisterName("init")
	selRetain                    = objc.RegisterName("retain")
	selRelease                   = objc.RegisterName("release")
	selIsKindOfClass             = objc.RegisterName("isKindOfClass:")
	selRespondsToSelector        = objc.RegisterName("respondsToSelector:")
	selInstancesRespondTo        = objc.RegisterName("instancesRespondToSelector:")
	selLayer                     = objc.RegisterName("layer")
	selSetWantsLayer             = objc.RegisterName("setWantsLayer:")
	selWindow                    = objc.RegisterName("window")
	selScreen                    = objc.RegisterName("screen")
	selMainScreen                = objc.RegisterName("mainScreen")
	selNativeScale               = objc.RegisterName("nativeScale")
	selBackingScaleFactor        = objc.RegisterName("backingScaleFactor")
	selSetContentScaleFactor     = objc.RegisterName("setContentScaleFactor:")
	selBounds                    = objc.RegisterName("bounds")
	selSetFrame                  = objc.RegisterName("setFrame:")
	selAddSublayer               = objc.RegisterName("addSublayer:")
	selSetContentsGravity        = objc.RegisterName("setContentsGravity:")
	selContentsScale             = objc.RegisterName("contentsScale")
	selSetContentsScale          = objc.RegisterName("setContentsScale:")
	selSetDevice                 = objc.RegisterName("setDevice:")
	selPixelFormat               = objc.RegisterName("pixelFormat")
	selSetPixelFormat            = objc.RegisterName("setPixelFormat:")
	selIsOpaque                  = objc.RegisterName("isOpaque")
	selSetOpaque                 = objc.RegisterName("setOpaque:")
	selSetFramebufferOnly        = objc.RegisterName("setFramebufferOnly:")
	selSetPresentsWithTx         = objc.RegisterName("setPresentsWithTransaction:")
	selWantsEDR                  = objc.RegisterName("wantsExtendedDynamicRangeContent")
	selSetWantsEDR               = objc.RegisterName("setWantsExtendedDynamicRangeContent:")
	selSetMaximumDrawableCount   = objc.RegisterName("setMaximumDrawableCount:")
	selDrawableSize              = objc.RegisterName("drawableSize")
	selSetDrawableSize           = objc.RegisterName("setDrawableSize:")
	selSetAllowsNextDrawableTime = objc.RegisterName("setAllowsNextDrawableTimeout:")
	selSetDisplaySyncEnabled     = objc.RegisterName("setDisplaySyncEnabled:")
	selSetDelegate               = objc.RegisterName("setDelegate:")
	selNextDrawable              = objc.RegisterName("nextDrawable")
	selTexture                   = objc.RegisterName("texture")
	selPresent                   = objc.RegisterName("present")
	selWidth                     = objc.RegisterName("width")
	selHeight                    = objc.RegisterName("height")
)

var (
	frameworksOnce sync.Once
	frameworksErr  error

	quartzCore uintptr

	autoreleasePoolPush func() uintptr
	autoreleasePoolPop  func(uintptr)
	createSystemDevice  func() uintptr
)

// loadFrameworks opens the system libraries the package messages. It is
// idempotent and returns the first failure on every call.
func loadFrameworks() error {
	frameworksOnce.Do(func() {
		objcLib, err := purego.Dlopen("/usr/lib/libobjc.A.dylib", purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			frameworksErr = fmt.Errorf("metal: open libobjc: %w", err)
			return
		}
		purego.RegisterLibFunc(&autoreleasePoolPush, objcLib, "objc_autoreleasePoolPush")
		purego.RegisterLibFunc(&autoreleasePoolPop, objcLib, "objc_autoreleasePoolPop")

		quartzCore, err = purego.Dlopen("/System/Library/Frameworks/QuartzCore.framework/QuartzCore", purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			frameworksErr = fmt.Errorf("metal: open QuartzCore: %w", err)
			return
		}

		metalLib, err := purego.Dlopen("/System/Library/Frameworks/Metal.framework/Metal", purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			frameworksErr = fmt.Errorf("metal: open Metal: %w", err)
			return
		}
		purego.RegisterLibFunc(&createSystemDevice, metalLib, "MTLCreateSystemDefaultDevice")

		if _, err := purego.Dlopen(uiFrameworkPath, purego.RTLD_NOW|purego.RTLD_GLOBAL); err != nil {
			frameworksErr = fmt.Errorf("metal: open %s: %w", uiFrameworkPath, err)
		}
	})
	return frameworksErr
}

func mustLoadFrameworks() {
	if err := loadFrameworks(); err != nil {
		panic(err)
	}
}

// stringConstant reads an exported NSString* constant from QuartzCore.
func stringConstant(name string) objc.ID {
	mustLoadFrameworks()
	sym, err := purego.Dlsym(quartzCore, name)
	if err != nil {
		panic(fmt.Sprintf("metal: missing symbol %s: %v", name, err))
	}
	return **(**objc.ID)(unsafe.Pointer(&sym))
}

// retained attaches a cleanup to owner that releases id once owner is
// unreachable.
func retained[T any](owner *T, id objc.ID) {
	runtime.AddCleanup(owner, func(id objc.ID) { id.Send(selRelease) }, id)
}

func respondsTo(id objc.ID, sel objc.SEL) bool {
	return objc.Send[bool](id, selRespondsToSelector, sel)
}
