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
	"net/http"
	"strings"
	"sync"

	"github.com/jrgalyan/dia/abi"
)

// Controller groups routes under a base path and carries its own middleware,
// which runs only for those routes, after the application chain.
//
// Paths are joined by plain concatenation: base "/api/" with "/users"
// registers "/api//users". Nothing is cleaned or collapsed.
type Controller struct {
	b    abi.Boundary
	h    *handle
	base string

	mu     sync.Mutex
	routes []Route
	mw     int
	err    error
}

func (c *Controller) apply(call string, sentinel error, do func(abi.Handle) (abi.Status, error), commit func()) *Controller {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c
	}
	c.err = c.h.use(func(raw abi.Handle) error {
		st, err := do(raw)
		if err != nil {
			return err
		}
		if st.Failed() {
			return callError(call, st, sentinel)
		}
		commit()
		return nil
	})
	return c
}

func (c *Controller) route(method, path string, h Handler, add routeAdder) *Controller {
	if h == nil {
		panic("dia: nil handler")
	}
	full := c.base + path
	cb := handlerCallback(c.b, h)
	return c.apply("controller_"+strings.ToLower(method), ErrRouteAddFailed, func(raw abi.Handle) (abi.Status, error) {
		return withCString(full, func(p abi.CString) abi.Status { return add(raw, p, cb) })
	}, func() { c.routes = append(c.routes, Route{Method: method, Path: full}) })
}

// Get registers a handler for GET requests to base+path.
func (c *Controller) Get(path string, h Handler) *Controller {
	return c.route(http.MethodGet, path, h, c.b.ControllerGet)
}

// Post registers a handler for POST requests to base+path.
func (c *Controller) Post(path string, h Handler) *Controller {
	return c.route(http.MethodPost, path, h, c.b.ControllerPost)
}

// Put registers a handler for PUT requests to base+path.
func (c *Controller) Put(path string, h Handler) *Controller {
	return c.route(http.MethodPut, path, h, c.b.ControllerPut)
}

// Delete registers a handler for DELETE requests to base+path.
func (c *Controller) Delete(path string, h Handler) *Controller {
	return c.route(http.MethodDelete, path, h, c.b.ControllerDelete)
}

// Patch registers a handler for PATCH requests to base+path.
func (c *Controller) Patch(path string, h Handler) *Controller {
	return c.route(http.MethodPatch, path, h, c.b.ControllerPatch)
}

// Middleware appends mw to this controller's chain. Once the controller has
// been added to an application the engine refuses further entries and the
// call fails with ErrMiddlewareAddFailed.
func (c *Controller) Middleware(mw Middleware) *Controller {
	if mw == nil {
		panic("dia: nil middleware")
	}
	cb := middlewareCallback(c.b, mw)
	return c.apply("controller_middleware", ErrMiddlewareAddFailed, func(raw abi.Handle) (abi.Status, error) {
		return c.b.ControllerMiddleware(raw, cb), nil
	}, func() { c.mw++ })
}

// BasePath returns the prefix given to NewController.
func (c *Controller) BasePath() string { return c.base }

// Routes returns the literal registrations, in order.
func (c *Controller) Routes() []Route {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Route, len(c.routes))
	copy(out, c.routes)
	return out
}

// MiddlewareLen returns the number of middleware entries registered.
func (c *Controller) MiddlewareLen() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mw
}

// Err returns the first registration failure.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Free releases the controller. Routes already merged into an application
// stay registered there.
func (c *Controller) Free() error {
	return c.h.release(c.b.ControllerFree)
}
