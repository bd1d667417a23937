// SPDX-License-Identifier: EPL-2.0

package al

import "github.com/unknownbruhhaha/linear-model-allen/driver"

// Properties is the generic parameter-access protocol shared by every value
// shape a resource supports. Get and set are written once per shape, not
// once per parameter; the fixed-parameter accessors on Buffer are thin
// wrappers over these.
//
// Both methods hold the context's current-context lock for the native call
// plus the error check that follows it.
type Properties[T any] interface {
	Get(param driver.Param) (T, error)
	Set(param driver.Param, value T) error
}

// FloatProps exposes the buffer's parameters as scalar floats.
func (b *Buffer) FloatProps() Properties[float32] { return bufferFloats{b} }

// Float3Props exposes the buffer's parameters as 3-component float vectors.
func (b *Buffer) Float3Props() Properties[[3]float32] { return bufferFloat3s{b} }

// IntProps exposes the buffer's parameters as scalar integers.
func (b *Buffer) IntProps() Properties[int32] { return bufferInts{b} }

// ChannelProps exposes the buffer's channel-count parameter as a Channels
// value. The parameter is read-only on the native side, so Set always fails
// with ErrUnsupportedOperation.
func (b *Buffer) ChannelProps() Properties[Channels] { return bufferChannels{b} }

var (
	_ Properties[float32]    = bufferFloats{}
	_ Properties[[3]float32] = bufferFloat3s{}
	_ Properties[int32]      = bufferInts{}
	_ Properties[Channels]   = bufferChannels{}
)

type bufferFloats struct{ b *Buffer }

func (p bufferFloats) Get(param driver.Param) (float32, error) {
	unlock := p.b.context.makeCurrent()
	defer unlock()

	v := p.b.drv().GetBufferf(p.b.handle, param)
	if err := p.b.context.checkError(); err != nil {
		return 0, err
	}
	return v, nil
}

func (p bufferFloats) Set(param driver.Param, value float32) error {
	unlock := p.b.context.makeCurrent()
	defer unlock()

	p.b.drv().Bufferf(p.b.handle, param, value)
	return p.b.context.checkError()
}

type bufferFloat3s struct{ b *Buffer }

func (p bufferFloat3s) Get(param driver.Param) ([3]float32, error) {
	unlock := p.b.context.makeCurrent()
	defer unlock()

	v := p.b.drv().GetBuffer3f(p.b.handle, param)
	if err := p.b.context.checkError(); err != nil {
		return [3]float32{}, err
	}
	return v, nil
}

func (p bufferFloat3s) Set(param driver.Param, value [3]float32) error {
	unlock := p.b.context.makeCurrent()
	defer unlock()

	p.b.drv().Buffer3f(p.b.handle, param, value)
	return p.b.context.checkError()
}

type bufferInts struct{ b *Buffer }

func (p bufferInts) Get(param driver.Param) (int32, error) {
	unlock := p.b.context.makeCurrent()
	defer unlock()

	v := p.b.drv().GetBufferi(p.b.handle, param)
	if err := p.b.context.checkError(); err != nil {
		return 0, err
	}
	return v, nil
}

func (p bufferInts) Set(param driver.Param, value int32) error {
	unlock := p.b.context.makeCurrent()
	defer unlock()

	p.b.drv().Bufferi(p.b.handle, param, value)
	return p.b.context.checkError()
}

// bufferChannels derives from the integer shape: the native side reports a
// channel count, decoded here into the Channels enum.
type bufferChannels struct{ b *Buffer }

func (p bufferChannels) Get(param driver.Param) (Channels, error) {
	v, err := bufferInts{p.b}.Get(param)
	if err != nil {
		return 0, err
	}
	return channelsFromCount(v)
}

func (p bufferChannels) Set(param driver.Param, value Channels) error {
	// The channel count is read-only on the native side; no call is made.
	return ErrUnsupportedOperation
}
