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
	"fmt"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/jrgalyan/dia/abi"
	"github.com/jrgalyan/dia/dispatch"
)

// route is one registration. chain is the controller stage and is nil for
// routes added directly to the application.
type route struct {
	method  string
	pattern string
	handler abi.Callback
	chain   *dispatch.Chain
}

// runState lives for one ApplicationRun call.
type runState struct {
	quit chan struct{}
	done chan struct{}
	once sync.Once
}

type application struct {
	mu     sync.Mutex
	host   string
	port   uint16
	mux    *chi.Mux
	chain  dispatch.Chain
	routes []route

	// attached are chains copied into this application. They freeze with it.
	attached []*dispatch.Chain

	running bool
	run     *runState
}

func (a *application) freeze() {
	a.chain.Freeze()
	for _, c := range a.attached {
		c.Freeze()
	}
	for _, rt := range a.routes {
		if rt.chain != nil {
			rt.chain.Freeze()
		}
	}
}

// stop asks a running application to shut down and returns a channel closed
// once its Run call has returned.
func (a *application) stop() <-chan struct{} {
	a.mu.Lock()
	rs := a.run
	a.mu.Unlock()
	if rs == nil {
		done := make(chan struct{})
		close(done)
		return done
	}
	rs.once.Do(func() { close(rs.quit) })
	return rs.done
}

// mount registers rts with the router. The whole route table is replayed on
// a scratch router first, so a pattern chi rejects leaves the application
// untouched.
func (a *application) mount(e *Engine, rts ...route) error {
	if err := tryMount(chi.NewRouter(), append(slices.Clone(a.routes), rts...)); err != nil {
		return err
	}
	for _, rt := range rts {
		a.mux.Method(rt.method, rt.pattern, e.routeHandler(a, rt))
	}
	a.routes = append(a.routes, rts...)
	return nil
}

func tryMount(mux *chi.Mux, rts []route) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("engine: %v", r)
		}
	}()
	for _, rt := range rts {
		mux.Method(rt.method, rt.pattern, http.NotFoundHandler())
	}
	return nil
}

func (e *Engine) application(h abi.Handle) (*application, bool) {
	return get[application](&e.objects, h, kindApplication)
}

func (e *Engine) ApplicationNew() abi.Handle {
	if !e.ready.Load() {
		return abi.Null
	}
	app := &application{
		host: e.cfg.DefaultHost,
		port: e.cfg.DefaultPort,
		mux:  chi.NewRouter(),
	}
	app.mux.NotFound(e.fallbackHandler(app, http.StatusNotFound))
	app.mux.MethodNotAllowed(e.fallbackHandler(app, http.StatusMethodNotAllowed))
	return e.objects.insert(kindApplication, app)
}

func (e *Engine) ApplicationHost(h abi.Handle, host abi.CString) abi.Status {
	app, ok := e.application(h)
	if !ok || host.IsNull() {
		return abi.Fail
	}
	s := host.String()
	if !validHost(s) {
		return abi.Fail
	}
	app.mu.Lock()
	defer app.mu.Unlock()
	if app.running {
		return abi.Fail
	}
	app.host = s
	return abi.OK
}

// ApplicationPort sets the listen port. Port 0 picks a free port at Run.
func (e *Engine) ApplicationPort(h abi.Handle, port uint16) abi.Status {
	app, ok := e.application(h)
	if !ok {
		return abi.Fail
	}
	app.mu.Lock()
	defer app.mu.Unlock()
	if app.running {
		return abi.Fail
	}
	app.port = port
	return abi.OK
}

func (e *Engine) ApplicationGet(h abi.Handle, path abi.CString, cb abi.Callback) abi.Status {
	return e.addRoute(h, http.MethodGet, path, cb)
}

func (e *Engine) ApplicationPost(h abi.Handle, path abi.CString, cb abi.Callback) abi.Status {
	return e.addRoute(h, http.MethodPost, path, cb)
}

func (e *Engine) ApplicationPut(h abi.Handle, path abi.CString, cb abi.Callback) abi.Status {
	return e.addRoute(h, http.MethodPut, path, cb)
}

func (e *Engine) ApplicationDelete(h abi.Handle, path abi.CString, cb abi.Callback) abi.Status {
	return e.addRoute(h, http.MethodDelete, path, cb)
}

func (e *Engine) ApplicationPatch(h abi.Handle, path abi.CString, cb abi.Callback) abi.Status {
	return e.addRoute(h, http.MethodPatch, path, cb)
}

func (e *Engine) addRoute(h abi.Handle, method string, path abi.CString, cb abi.Callback) abi.Status {
	app, ok := e.application(h)
	if !ok || path.IsNull() || cb == nil {
		return abi.Fail
	}
	app.mu.Lock()
	defer app.mu.Unlock()
	if app.running {
		return abi.Fail
	}
	err := app.mount(e, route{method: method, pattern: path.String(), handler: cb})
	if err != nil {
		e.log.Debug("route rejected", zap.Error(err))
	}
	return status(err)
}

// ApplicationUse appends a copy of the middleware chain's entries to the
// application chain.
func (e *Engine) ApplicationUse(h abi.Handle, mwh abi.Handle) abi.Status {
	app, ok := e.application(h)
	if !ok {
		return abi.Fail
	}
	mw, ok := e.middleware(mwh)
	if !ok {
		return abi.Fail
	}
	app.mu.Lock()
	defer app.mu.Unlock()
	if app.running {
		return abi.Fail
	}
	if err := app.chain.Extend(&mw.chain); err != nil {
		return abi.Fail
	}
	app.attached = append(app.attached, &mw.chain)
	return abi.OK
}

// ApplicationController copies the controller's routes into the application
// and seals the controller: its chain and route list stop accepting entries,
// so nothing registered on it afterwards can go unserved.
func (e *Engine) ApplicationController(h abi.Handle, ch abi.Handle) abi.Status {
	app, ok := e.application(h)
	if !ok {
		return abi.Fail
	}
	ctrl, ok := e.controller(ch)
	if !ok {
		return abi.Fail
	}

	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	stage := &dispatch.Chain{}
	if err := stage.Extend(&ctrl.chain); err != nil {
		return abi.Fail
	}
	rts := make([]route, len(ctrl.routes))
	for i, rt := range ctrl.routes {
		rt.chain = stage
		rts[i] = rt
	}

	app.mu.Lock()
	defer app.mu.Unlock()
	if app.running {
		return abi.Fail
	}
	if err := app.mount(e, rts...); err != nil {
		e.log.Debug("controller rejected", zap.Error(err))
		return abi.Fail
	}
	app.attached = append(app.attached, stage)
	ctrl.sealed = true
	ctrl.chain.Freeze()
	return abi.OK
}

// ApplicationFree releases the application, stopping it if it is running.
func (e *Engine) ApplicationFree(h abi.Handle) {
	v, ok := e.objects.remove(h, kindApplication)
	if !ok {
		return
	}
	v.(*application).stop()
}

func validHost(s string) bool {
	if s == "" || len(s) > 253 || strings.ContainsAny(s, " /\t\r\n") {
		return false
	}
	if net.ParseIP(strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")) != nil {
		return true
	}
	for _, label := range strings.Split(s, ".") {
		if label == "" || len(label) > 63 {
			return false
		}
		for _, r := range label {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			default:
				return false
			}
		}
	}
	return true
}
