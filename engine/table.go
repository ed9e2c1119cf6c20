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

package engine

import (
	"sync"

	"github.com/jrgalyan/dia/abi"
)

type kind uint8

const (
	kindApplication kind = iota + 1
	kindRequest
	kindResponse
	kindController
	kindMiddleware
)

func (k kind) String() string {
	switch k {
	case kindApplication:
		return "application"
	case kindRequest:
		return "request"
	case kindResponse:
		return "response"
	case kindController:
		return "controller"
	case kindMiddleware:
		return "middleware"
	default:
		return "unknown"
	}
}

type slot struct {
	gen   uint32
	kind  kind
	value any
	live  bool
}

// table maps handles to native objects. A handle packs a slot index (plus
// one, so zero stays null) in the low 32 bits and the slot's generation in
// the high 32 bits. Freeing a slot bumps its generation, so a stale handle
// never resolves to a later occupant of the same slot.
type table struct {
	mu    sync.RWMutex
	slots []slot
	free  []uint32
	count int
}

func pack(idx, gen uint32) abi.Handle {
	return abi.Handle(uint64(gen)<<32 | uint64(idx+1))
}

func unpack(h abi.Handle) (idx, gen uint32, ok bool) {
	lo := uint32(uint64(h))
	if lo == 0 {
		return 0, 0, false
	}
	return lo - 1, uint32(uint64(h) >> 32), true
}

func (t *table) insert(k kind, v any) abi.Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	var idx uint32
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		idx = uint32(len(t.slots))
		t.slots = append(t.slots, slot{})
	}
	s := &t.slots[idx]
	s.kind = k
	s.value = v
	s.live = true
	t.count++
	return pack(idx, s.gen)
}

func (t *table) lookup(h abi.Handle, k kind) (any, bool) {
	idx, gen, ok := unpack(h)
	if !ok {
		return nil, false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	if int(idx) >= len(t.slots) {
		return nil, false
	}
	s := &t.slots[idx]
	if !s.live || s.gen != gen || s.kind != k {
		return nil, false
	}
	return s.value, true
}

func (t *table) remove(h abi.Handle, k kind) (any, bool) {
	idx, gen, ok := unpack(h)
	if !ok {
		return nil, false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if int(idx) >= len(t.slots) {
		return nil, false
	}
	s := &t.slots[idx]
	if !s.live || s.gen != gen || s.kind != k {
		return nil, false
	}
	v := s.value
	s.value = nil
	s.live = false
	s.gen++
	t.free = append(t.free, idx)
	t.count--
	return v, true
}

// len returns the number of live handles.
func (t *table) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.count
}

// get resolves h to a *T of the given kind.
func get[T any](t *table, h abi.Handle, k kind) (*T, bool) {
	v, ok := t.lookup(h, k)
	if !ok {
		return nil, false
	}
	p, ok := v.(*T)
	return p, ok
}
