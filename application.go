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
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/jrgalyan/dia/abi"
)

// Route is a registration as it was forwarded to the engine.
type Route struct {
	Method string
	Path   string
}

// Application is the host-side builder for an engine application. Setters
// return the receiver for chaining. The first failure sticks: later setters
// do nothing and Err (and Run) report it, so a failed call never leaves the
// configuration half applied.
type Application struct {
	b abi.Boundary
	h *handle

	mu     sync.Mutex
	host   string
	port   uint16
	routes []Route
	err    error

	started atomic.Bool
}

func (a *Application) apply(call string, sentinel error, do func(abi.Handle) (abi.Status, error), commit func()) *Application {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.err != nil {
		return a
	}
	if a.started.Load() {
		a.err = ErrApplicationRunning
		return a
	}
	a.err = a.h.use(func(raw abi.Handle) error {
		st, err := do(raw)
		if err != nil {
			return err
		}
		if st.Failed() {
			return callError(call, st, sentinel)
		}
		if commit != nil {
			commit()
		}
		return nil
	})
	return a
}

// Host sets the bind address.
func (a *Application) Host(addr string) *Application {
	return a.apply("application_host", ErrHostSetFailed, func(raw abi.Handle) (abi.Status, error) {
		return withCString(addr, func(c abi.CString) abi.Status { return a.b.ApplicationHost(raw, c) })
	}, func() { a.host = addr })
}

// Port sets the bind port.
func (a *Application) Port(n uint16) *Application {
	return a.apply("application_port", ErrPortSetFailed, func(raw abi.Handle) (abi.Status, error) {
		return a.b.ApplicationPort(raw, n), nil
	}, func() { a.port = n })
}

// Configure applies cfg through Host and Port.
func (a *Application) Configure(cfg Config) *Application {
	return a.Host(cfg.Host).Port(cfg.Port)
}

type routeAdder func(abi.Handle, abi.CString, abi.Callback) abi.Status

func (a *Application) route(method, path string, h Handler, add routeAdder) *Application {
	if h == nil {
		panic("dia: nil handler")
	}
	cb := handlerCallback(a.b, h)
	return a.apply("application_"+strings.ToLower(method), ErrRouteAddFailed, func(raw abi.Handle) (abi.Status, error) {
		return withCString(path, func(c abi.CString) abi.Status { return add(raw, c, cb) })
	}, func() { a.routes = append(a.routes, Route{Method: method, Path: path}) })
}

// Get registers a handler for GET requests to path.
func (a *Application) Get(path string, h Handler) *Application {
	return a.route(http.MethodGet, path, h, a.b.ApplicationGet)
}

// Post registers a handler for POST requests to path.
func (a *Application) Post(path string, h Handler) *Application {
	return a.route(http.MethodPost, path, h, a.b.ApplicationPost)
}

// Put registers a handler for PUT requests to path.
func (a *Application) Put(path string, h Handler) *Application {
	return a.route(http.MethodPut, path, h, a.b.ApplicationPut)
}

// Delete registers a handler for DELETE requests to path.
func (a *Application) Delete(path string, h Handler) *Application {
	return a.route(http.MethodDelete, path, h, a.b.ApplicationDelete)
}

// Patch registers a handler for PATCH requests to path.
func (a *Application) Patch(path string, h Handler) *Application {
	return a.route(http.MethodPatch, path, h, a.b.ApplicationPatch)
}

// Use appends the entries of mw to the application chain, which runs for
// every route. The chain is copied; mw still has to be freed by the caller.
func (a *Application) Use(mw *MiddlewareChain) *Application {
	if err := mw.Err(); err != nil {
		return a.setErr(fmt.Errorf("%w: %w", ErrMiddlewareAddFailed, err))
	}
	return a.apply("application_use", ErrMiddlewareAddFailed, func(raw abi.Handle) (abi.Status, error) {
		var st abi.Status
		err := mw.h.use(func(mwRaw abi.Handle) error {
			st = a.b.ApplicationUse(raw, mwRaw)
			return nil
		})
		return st, err
	}, nil)
}

// AddController merges the controller's routes and middleware into the
// application. The engine seals the controller: routes or middleware
// registered on it afterwards fail instead of being silently left out. The
// controller still has to be freed by the caller.
func (a *Application) AddController(ctrl *Controller) *Application {
	if err := ctrl.Err(); err != nil {
		return a.setErr(fmt.Errorf("%w: %w", ErrControllerAddFailed, err))
	}
	return a.apply("application_controller", ErrControllerAddFailed, func(raw abi.Handle) (abi.Status, error) {
		var st abi.Status
		err := ctrl.h.use(func(ctrlRaw abi.Handle) error {
			st = a.b.ApplicationController(raw, ctrlRaw)
			return nil
		})
		return st, err
	}, func() { a.routes = append(a.routes, ctrl.Routes()...) })
}

func (a *Application) setErr(err error) *Application {
	a.mu.Lock()
	if a.err == nil {
		a.err = err
	}
	a.mu.Unlock()
	return a
}

// Err returns the first configuration failure.
func (a *Application) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

// Addr returns the host and port last accepted by the engine.
func (a *Application) Addr() (string, uint16) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.host, a.port
}

// Routes returns the registrations accepted by the engine, in order.
func (a *Application) Routes() []Route {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Route, len(a.routes))
	copy(out, a.routes)
	return out
}

// Run hands control to the engine's event loop and blocks until it returns.
// A recorded configuration error is returned without starting anything.
// After Run has been called the application cannot be reconfigured, and
// Free waits for Run to return.
func (a *Application) Run() error {
	a.mu.Lock()
	if a.err != nil {
		err := a.err
		a.mu.Unlock()
		return err
	}
	if !a.started.CompareAndSwap(false, true) {
		a.mu.Unlock()
		return ErrApplicationRunning
	}
	host, port, n := a.host, a.port, len(a.routes)
	a.mu.Unlock()

	return a.h.use(func(raw abi.Handle) error {
		Logger().Info("application starting",
			zap.String("host", host),
			zap.Uint16("port", port),
			zap.Int("routes", n),
		)
		if st := a.b.ApplicationRun(raw); st.Failed() {
			return callError("application_run", st, ErrServerRunFailed)
		}
		return nil
	})
}

// Free releases the application. A second Free returns ErrInvalidHandle.
// Free does not stop a running application: it waits for Run to return, so
// stop the engine first (a signal, or engine.Engine.Shutdown).
func (a *Application) Free() error {
	return a.h.release(a.b.ApplicationFree)
}
