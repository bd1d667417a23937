// SPDX-License-Identifier: EPL-2.0

package al

import (
	"fmt"
	"sync"

	"github.com/unknownbruhhaha/linear-model-allen/driver"
)

// Device is an opened native audio device. All contexts created from one
// device share its serialization lock: the native subsystem has a single
// "current context" slot and is not thread-safe across contexts, so the
// device lock is the one serialization point for every native call made
// through it.
type Device struct {
	drv    driver.Driver
	handle uintptr

	// current serializes make-current + native call + error check windows
	// across every context of this device.
	current sync.Mutex
}

// OpenDevice opens the named device on drv. An empty name selects the
// driver's default device.
func OpenDevice(drv driver.Driver, name string) (*Device, error) {
	handle, err := drv.OpenDevice(name)
	if err != nil {
		return nil, fmt.Errorf("opening device %q: %w", name, err)
	}
	return &Device{drv: drv, handle: handle}, nil
}

// NewContext creates a context on the device.
func (d *Device) NewContext() (*Context, error) {
	handle, err := d.drv.CreateContext(d.handle)
	if err != nil {
		return nil, fmt.Errorf("creating context: %w", err)
	}
	return &Context{dev: d, handle: handle}, nil
}

// Close releases the native device. Contexts and buffers created from the
// device must already be destroyed.
func (d *Device) Close() error {
	return d.drv.CloseDevice(d.handle)
}
