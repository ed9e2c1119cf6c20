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
	"net/http"
	"slices"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/jrgalyan/dia/abi"
	"github.com/jrgalyan/dia/dispatch"
)

// controller collects routes and a chain of its own. Nothing is served from
// it directly: ApplicationController copies both into an application and
// seals it.
type controller struct {
	mu     sync.Mutex
	routes []route
	chain  dispatch.Chain
	sealed bool
}

func (e *Engine) controller(h abi.Handle) (*controller, bool) {
	return get[controller](&e.objects, h, kindController)
}

func (e *Engine) ControllerNew() abi.Handle {
	if !e.ready.Load() {
		return abi.Null
	}
	return e.objects.insert(kindController, &controller{})
}

func (e *Engine) ControllerGet(h abi.Handle, path abi.CString, cb abi.Callback) abi.Status {
	return e.addControllerRoute(h, http.MethodGet, path, cb)
}

func (e *Engine) ControllerPost(h abi.Handle, path abi.CString, cb abi.Callback) abi.Status {
	return e.addControllerRoute(h, http.MethodPost, path, cb)
}

func (e *Engine) ControllerPut(h abi.Handle, path abi.CString, cb abi.Callback) abi.Status {
	return e.addControllerRoute(h, http.MethodPut, path, cb)
}

func (e *Engine) ControllerDelete(h abi.Handle, path abi.CString, cb abi.Callback) abi.Status {
	return e.addControllerRoute(h, http.MethodDelete, path, cb)
}

func (e *Engine) ControllerPatch(h abi.Handle, path abi.CString, cb abi.Callback) abi.Status {
	return e.addControllerRoute(h, http.MethodPatch, path, cb)
}

// addControllerRoute records a route whose path already includes the base
// path. Patterns chi would reject fail here rather than when the controller
// is added to an application.
func (e *Engine) addControllerRoute(h abi.Handle, method string, path abi.CString, cb abi.Callback) abi.Status {
	ctrl, ok := e.controller(h)
	if !ok || path.IsNull() || cb == nil {
		return abi.Fail
	}
	rt := route{method: method, pattern: path.String(), handler: cb}

	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	if ctrl.sealed {
		return abi.Fail
	}
	if err := tryMount(chi.NewRouter(), append(slices.Clone(ctrl.routes), rt)); err != nil {
		return abi.Fail
	}
	ctrl.routes = append(ctrl.routes, rt)
	return abi.OK
}

// ControllerMiddleware appends cb to the controller chain. A sealed
// controller has a frozen chain, so the append fails.
func (e *Engine) ControllerMiddleware(h abi.Handle, cb abi.Callback) abi.Status {
	ctrl, ok := e.controller(h)
	if !ok {
		return abi.Fail
	}
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	return status(ctrl.chain.Append(cb))
}

func (e *Engine) ControllerFree(h abi.Handle) {
	e.objects.remove(h, kindController)
}
