// SPDX-License-Identifier: EPL-2.0

package al

import (
	"fmt"
)

// Context is a native audio context. It is shared by reference across every
// resource created from it; resources hold it only to make it current for
// their native calls.
type Context struct {
	dev    *Device
	handle uintptr
}

// makeCurrent locks the device, makes this context current, and returns the
// unlock func. The lock must be held through the native call and the error
// check that follows it: the error register is current-context state, and a
// context switch in between would corrupt error reporting.
func (c *Context) makeCurrent() func() {
	c.dev.current.Lock()
	c.dev.drv.MakeContextCurrent(c.handle)
	return c.dev.current.Unlock
}

// checkError drains the native error register and translates it. Callers
// must still hold the lock returned by makeCurrent.
func (c *Context) checkError() error {
	return translateError(c.dev.drv.GetError())
}

// HasExtension reports whether the context supports the named extension.
func (c *Context) HasExtension(name string) bool {
	return c.dev.drv.IsExtensionPresent(name)
}

func (c *Context) requireExtension(name string) error {
	if !c.HasExtension(name) {
		return fmt.Errorf("%w: %s", ErrMissingExtension, name)
	}
	return nil
}

// NewBuffer allocates one buffer handle on the context.
//
// The lock is held across the allocation and its error check as one window.
func (c *Context) NewBuffer() (*Buffer, error) {
	unlock := c.makeCurrent()
	defer unlock()

	names := c.dev.drv.GenBuffers(1)
	if err := c.checkError(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocation, err)
	}
	if len(names) != 1 || names[0] == 0 {
		return nil, ErrAllocation
	}
	return &Buffer{handle: names[0], context: c}, nil
}

// Destroy releases the native context. Buffers created from it must already
// be destroyed.
func (c *Context) Destroy() {
	c.dev.drv.DestroyContext(c.handle)
}
