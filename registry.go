// SPDX-License-Identifier: EPL-2.0

package allen

import (
	"sync"

	"github.com/unknownbruhhaha/linear-model-allen/al"
)

// Registry maps format keys (e.g., "wav", "aiff") to decoders.
type Registry struct {
	codecs map[string]al.Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]al.Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d al.Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (al.Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}
