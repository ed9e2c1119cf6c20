/*
 *    Copyright 2025 Jeff Galyan
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *        http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package dia

import (
	"sync"

	"github.com/jrgalyan/dia/abi"
)

// handle is the owning side of an abi.Handle. The raw value is cleared on
// release, so a second release or any later use fails with ErrInvalidHandle
// on the host instead of reaching the engine.
//
// Calls hold the read lock for the length of the boundary call; release takes
// the write lock, so a handle is never freed under an in-flight call.
type handle struct {
	mu  sync.RWMutex
	raw abi.Handle
}

func newHandle(raw abi.Handle) (*handle, error) {
	if raw == abi.Null {
		return nil, ErrHandleCreateFailed
	}
	return &handle{raw: raw}, nil
}

// use calls fn with the live handle.
func (h *handle) use(fn func(abi.Handle) error) error {
	if h == nil {
		return ErrInvalidHandle
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.raw == abi.Null {
		return ErrInvalidHandle
	}
	return fn(h.raw)
}

// release invalidates the handle and hands the raw value to free exactly once.
// free may be nil for borrowed handles the host must not free.
func (h *handle) release(free func(abi.Handle)) error {
	if h == nil {
		return ErrInvalidHandle
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.raw == abi.Null {
		return ErrInvalidHandle
	}
	raw := h.raw
	h.raw = abi.Null
	if free != nil {
		free(raw)
	}
	return nil
}

func (h *handle) valid() bool {
	if h == nil {
		return false
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.raw != abi.Null
}
