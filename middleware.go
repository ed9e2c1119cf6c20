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

// MiddlewareChain is an ordered list of chain entries held by the engine.
// Entries are either engine built-ins (CORS, Logger) or host Middleware.
// Attach it with Application.Use.
type MiddlewareChain struct {
	b abi.Boundary
	h *handle

	mu    sync.Mutex
	names []string
	err   error
}

func (m *MiddlewareChain) apply(name string, do func(abi.Handle) abi.Status) *MiddlewareChain {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m
	}
	m.err = m.h.use(func(raw abi.Handle) error {
		if st := do(raw); st.Failed() {
			return callError("middleware_"+name, st, ErrMiddlewareAddFailed)
		}
		m.names = append(m.names, name)
		return nil
	})
	return m
}

// CORS appends the engine's CORS handling. Preflight requests stop the chain
// with 204.
func (m *MiddlewareChain) CORS() *MiddlewareChain {
	return m.apply("cors", m.b.MiddlewareCORS)
}

// Logger appends the engine's access log entry.
func (m *MiddlewareChain) Logger() *MiddlewareChain {
	return m.apply("logger", m.b.MiddlewareLogger)
}

// Custom appends a host middleware.
func (m *MiddlewareChain) Custom(mw Middleware) *MiddlewareChain {
	if mw == nil {
		panic("dia: nil middleware")
	}
	cb := middlewareCallback(m.b, mw)
	return m.apply("custom", func(raw abi.Handle) abi.Status {
		return m.b.MiddlewareCustom(raw, cb)
	})
}

// Entries returns the kinds of the registered entries in chain order.
func (m *MiddlewareChain) Entries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Err returns the first registration failure.
func (m *MiddlewareChain) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// Free releases the chain. Applications it was attached to keep their copy.
func (m *MiddlewareChain) Free() error {
	return m.h.release(m.b.MiddlewareFree)
}
