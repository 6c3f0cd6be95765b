// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build darwin

package metal

import (
	"fmt"
	"sync"

	"github.com/ebitengine/purego/objc"

	"github.com/gogpu/swapchain/ca"
)

var selShouldInheritScale = objc.RegisterName("layer:shouldInheritContentsScale:fromWindow:")

var (
	delegateMu      sync.Mutex
	delegateObjects = map[string]objc.ID{}
)

// delegateObject returns the Objective-C object standing in for d,
// registering a class named d.Name() the first time the name is seen.
// Classes cannot be unregistered, so both the class and its single
// instance live until the process exits.
func delegateObject(d ca.ScaleDelegate) objc.ID {
	if d == nil {
		return 0
	}
	delegateMu.Lock()
	defer delegateMu.Unlock()

	name := d.Name()
	if id, ok := delegateObjects[name]; ok {
		return id
	}

	class := objc.GetClass(name)
	if class == 0 {
		var err error
		class, err = objc.RegisterClass(
			name,
			objc.GetClass("NSObject"),
			nil,
			nil,
			[]objc.MethodDef{{
				Cmd: selShouldInheritScale,
				Fn: func(self objc.ID, _ objc.SEL, layer objc.ID, scale float64, window objc.ID) bool {
					return d.ShouldInheritContentsScale(&Layer{id: layer}, scale, &Window{id: window})
				},
			}},
		)
		if err != nil {
			panic(fmt.Sprintf("metal: register delegate class %s: %v", name, err))
		}
	}

	id := objc.ID(class).Send(selAlloc).Send(selInit)
	delegateObjects[name] = id
	return id
}
