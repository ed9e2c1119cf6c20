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

// Package dispatch runs middleware chains with the short-circuit protocol
// shared by every engine behind the abi boundary.
package dispatch

import (
	"errors"
	"sync"

	"github.com/jrgalyan/dia/abi"
)

var (
	ErrFrozen   = errors.New("dispatch: chain is frozen")
	ErrNilEntry = errors.New("dispatch: nil entry")
)

// Chain is an ordered list of middleware entries. Entries run in registration
// order. Once frozen the chain rejects further changes.
type Chain struct {
	mu      sync.RWMutex
	entries []abi.Callback
	frozen  bool
}

// Append adds cb at the end of the chain.
func (c *Chain) Append(cb abi.Callback) error {
	if cb == nil {
		return ErrNilEntry
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.frozen {
		return ErrFrozen
	}
	c.entries = append(c.entries, cb)
	return nil
}

// Extend appends a snapshot of other's entries, preserving their order.
func (c *Chain) Extend(other *Chain) error {
	if other == c {
		return errors.New("dispatch: chain cannot extend itself")
	}
	src := other.Entries()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.frozen {
		return ErrFrozen
	}
	c.entries = append(c.entries, src...)
	return nil
}

// Freeze makes the chain immutable. It is safe to call more than once.
func (c *Chain) Freeze() {
	c.mu.Lock()
	c.frozen = true
	c.mu.Unlock()
}

func (c *Chain) Frozen() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.frozen
}

func (c *Chain) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Entries returns a copy of the entries in order.
func (c *Chain) Entries() []abi.Callback {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]abi.Callback, len(c.entries))
	copy(out, c.entries)
	return out
}

// Outcome records how far a request got through its chain.
type Outcome struct {
	// Ran is the number of middleware entries invoked, across all stages.
	Ran int
	// Aborted is true when an entry returned a nonzero status.
	Aborted bool
	// Code is the status of the aborting entry, OK otherwise.
	Code abi.Status
	// Terminal is true when the route handler was invoked.
	Terminal bool
}

// Run invokes the entries of each stage in order and then terminal. The
// first entry returning a nonzero status stops everything after it. The
// terminal handler's own status is discarded: the response is whatever was
// written to resp before it returned.
func Run(req, resp abi.Handle, terminal abi.Callback, stages ...*Chain) Outcome {
	var out Outcome
	for _, st := range stages {
		for _, cb := range st.Entries() {
			out.Ran++
			if code := cb(req, resp); code != abi.OK {
				out.Aborted = true
				out.Code = code
				return out
			}
		}
	}
	if terminal != nil {
		_ = terminal(req, resp)
		out.Terminal = true
	}
	return out
}
