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

// Package abitest provides an in-memory abi.Boundary for testing hosts
// without sockets. It records every boundary call, can be told to fail
// specific calls, and dispatches synthetic requests through the same chain
// rules as the reference engine.
package abitest

import (
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/jrgalyan/dia/abi"
	"github.com/jrgalyan/dia/dispatch"
)

// Version is what Loopback.Version reports.
const Version = "loopback"

type route struct {
	method  string
	path    string
	handler abi.Callback
	chain   *dispatch.Chain
}

type application struct {
	host   string
	port   uint16
	chain  dispatch.Chain
	routes []route
	frozen []*dispatch.Chain
	runs   int
}

type request struct {
	method  string
	path    string
	header  http.Header
	query   url.Values
	params  map[string]string
	body    []byte
	scratch []byte
}

type response struct {
	status  int
	header  http.Header
	cookies []string
	body    []byte
}

type controller struct {
	routes []route
	chain  dispatch.Chain
	sealed bool
}

type middleware struct {
	chain dispatch.Chain
	kinds []string
}

// Loopback is an in-memory abi.Boundary. Handles are never reused, so a
// stale handle always fails. It is safe for concurrent use.
type Loopback struct {
	mu      sync.Mutex
	ready   bool
	next    abi.Handle
	objects map[abi.Handle]any
	failing map[string]bool
	journal []string
	version abi.CString
}

var _ abi.Boundary = (*Loopback)(nil)

// New returns an uninitialised loopback. Handle constructors return the null
// handle until Init succeeds.
func New() *Loopback {
	v, _ := abi.NewCString(Version)
	return &Loopback{
		objects: make(map[abi.Handle]any),
		failing: make(map[string]bool),
		version: v,
	}
}

// FailOn makes the named boundary calls (method names such as
// "ApplicationHost") fail from now on. Constructors return the null handle.
func (l *Loopback) FailOn(calls ...string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, c := range calls {
		l.failing[c] = true
	}
}

// Calls returns the journal of boundary calls in order.
func (l *Loopback) Calls() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.journal))
	copy(out, l.journal)
	return out
}

// CallCount returns how many times the named call was made.
func (l *Loopback) CallCount(call string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, c := range l.journal {
		if c == call {
			n++
		}
	}
	return n
}

// Live returns the number of handles not yet freed.
func (l *Loopback) Live() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.objects)
}

// record journals call and reports whether it should fail. It must be
// called with l.mu held.
func (l *Loopback) record(call string) bool {
	l.journal = append(l.journal, call)
	return l.failing[call]
}

func (l *Loopback) insert(v any) abi.Handle {
	l.next++
	l.objects[l.next] = v
	return l.next
}

func lookup[T any](l *Loopback, h abi.Handle) (*T, bool) {
	v, ok := l.objects[h]
	if !ok {
		return nil, false
	}
	p, ok := v.(*T)
	return p, ok
}

// create journals call and stores v unless the call is failing.
func (l *Loopback) create(call string, v any) abi.Handle {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.record(call) || !l.ready {
		return abi.Null
	}
	return l.insert(v)
}

func free[T any](l *Loopback, call string, h abi.Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.record(call)
	if _, ok := lookup[T](l, h); ok {
		delete(l.objects, h)
	}
}

// mutate journals call and runs fn on the object behind h.
func mutate[T any](l *Loopback, call string, h abi.Handle, fn func(*T) bool) abi.Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.record(call) {
		return abi.Fail
	}
	obj, ok := lookup[T](l, h)
	if !ok || !fn(obj) {
		return abi.Fail
	}
	return abi.OK
}

// read journals call and returns fn's result borrowed into the request
// scratch buffer. fn returns ok == false for absent values.
func (l *Loopback) read(call string, h abi.Handle, fn func(*request) ([]byte, bool)) abi.CString {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.record(call) {
		return nil
	}
	r, ok := lookup[request](l, h)
	if !ok {
		return nil
	}
	b, ok := fn(r)
	if !ok {
		return nil
	}
	r.scratch = abi.BorrowBytes(r.scratch, b)
	return r.scratch
}

func (l *Loopback) Init() abi.Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.record("Init") {
		return abi.Fail
	}
	l.ready = true
	return abi.OK
}

func (l *Loopback) Version() abi.CString {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.record("Version")
	return l.version
}

func (l *Loopback) ApplicationNew() abi.Handle {
	return l.create("ApplicationNew", &application{host: "127.0.0.1", port: 8080})
}

func (l *Loopback) ApplicationHost(h abi.Handle, host abi.CString) abi.Status {
	return mutate(l, "ApplicationHost", h, func(a *application) bool {
		if host.IsNull() || a.runs > 0 {
			return false
		}
		a.host = host.String()
		return true
	})
}

func (l *Loopback) ApplicationPort(h abi.Handle, port uint16) abi.Status {
	return mutate(l, "ApplicationPort", h, func(a *application) bool {
		if a.runs > 0 {
			return false
		}
		a.port = port
		return true
	})
}

func (l *Loopback) addRoute(call, method string, h abi.Handle, path abi.CString, cb abi.Callback) abi.Status {
	return mutate(l, call, h, func(a *application) bool {
		if path.IsNull() || cb == nil || a.runs > 0 {
			return false
		}
		a.routes = append(a.routes, route{method: method, path: path.String(), handler: cb})
		return true
	})
}

func (l *Loopback) ApplicationGet(h abi.Handle, path abi.CString, cb abi.Callback) abi.Status {
	return l.addRoute("ApplicationGet", http.MethodGet, h, path, cb)
}

func (l *Loopback) ApplicationPost(h abi.Handle, path abi.CString, cb abi.Callback) abi.Status {
	return l.addRoute("ApplicationPost", http.MethodPost, h, path, cb)
}

func (l *Loopback) ApplicationPut(h abi.Handle, path abi.CString, cb abi.Callback) abi.Status {
	return l.addRoute("ApplicationPut", http.MethodPut, h, path, cb)
}

func (l *Loopback) ApplicationDelete(h abi.Handle, path abi.CString, cb abi.Callback) abi.Status {
	return l.addRoute("ApplicationDelete", http.MethodDelete, h, path, cb)
}

func (l *Loopback) ApplicationPatch(h abi.Handle, path abi.CString, cb abi.Callback) abi.Status {
	return l.addRoute("ApplicationPatch", http.MethodPatch, h, path, cb)
}

func (l *Loopback) ApplicationUse(h abi.Handle, mwh abi.Handle) abi.Status {
	l.mu.Lock()
	mw, ok := lookup[middleware](l, mwh)
	l.mu.Unlock()
	return mutate(l, "ApplicationUse", h, func(a *application) bool {
		if !ok || a.runs > 0 || a.chain.Extend(&mw.chain) != nil {
			return false
		}
		a.frozen = append(a.frozen, &mw.chain)
		return true
	})
}

func (l *Loopback) ApplicationController(h abi.Handle, ch abi.Handle) abi.Status {
	l.mu.Lock()
	ctrl, ok := lookup[controller](l, ch)
	l.mu.Unlock()
	return mutate(l, "ApplicationController", h, func(a *application) bool {
		if !ok || a.runs > 0 {
			return false
		}
		stage := &dispatch.Chain{}
		if stage.Extend(&ctrl.chain) != nil {
			return false
		}
		for _, rt := range ctrl.routes {
			rt.chain = stage
			a.routes = append(a.routes, rt)
		}
		a.frozen = append(a.frozen, stage)
		ctrl.sealed = true
		ctrl.chain.Freeze()
		return true
	})
}

// ApplicationRun freezes the application's chains and returns at once, as if
// the server had been shut down cleanly.
func (l *Loopback) ApplicationRun(h abi.Handle) abi.Status {
	return mutate(l, "ApplicationRun", h, func(a *application) bool {
		a.chain.Freeze()
		for _, c := range a.frozen {
			c.Freeze()
		}
		a.runs++
		return true
	})
}

func (l *Loopback) ApplicationFree(h abi.Handle) { free[application](l, "ApplicationFree", h) }

func (l *Loopback) RequestNew() abi.Handle {
	return l.create("RequestNew", &request{
		method: http.MethodGet,
		path:   "/",
		header: http.Header{},
		query:  url.Values{},
		params: map[string]string{},
	})
}

func (l *Loopback) RequestMethod(h abi.Handle) abi.CString {
	return l.read("RequestMethod", h, func(r *request) ([]byte, bool) { return []byte(r.method), true })
}

func (l *Loopback) RequestPath(h abi.Handle) abi.CString {
	return l.read("RequestPath", h, func(r *request) ([]byte, bool) { return []byte(r.path), true })
}

func (l *Loopback) RequestHeader(h abi.Handle, name abi.CString) abi.CString {
	return l.read("RequestHeader", h, func(r *request) ([]byte, bool) {
		vals := r.header[http.CanonicalHeaderKey(name.String())]
		if name.IsNull() || len(vals) == 0 {
			return nil, false
		}
		return []byte(vals[0]), true
	})
}

func (l *Loopback) RequestQuery(h abi.Handle, key abi.CString) abi.CString {
	return l.read("RequestQuery", h, func(r *request) ([]byte, bool) {
		vals, ok := r.query[key.String()]
		if key.IsNull() || !ok || len(vals) == 0 {
			return nil, false
		}
		return []byte(vals[0]), true
	})
}

func (l *Loopback) RequestParam(h abi.Handle, name abi.CString) abi.CString {
	return l.read("RequestParam", h, func(r *request) ([]byte, bool) {
		v, ok := r.params[name.String()]
		if name.IsNull() || !ok {
			return nil, false
		}
		return []byte(v), true
	})
}

func (l *Loopback) RequestBody(h abi.Handle) abi.CString {
	return l.read("RequestBody", h, func(r *request) ([]byte, bool) { return r.body, true })
}

func (l *Loopback) RequestFree(h abi.Handle) { free[request](l, "RequestFree", h) }

func (l *Loopback) ResponseNew() abi.Handle {
	return l.create("ResponseNew", &response{header: http.Header{}})
}

func (l *Loopback) ResponseText(h abi.Handle, content abi.CString) abi.Status {
	return mutate(l, "ResponseText", h, func(r *response) bool {
		if content.IsNull() {
			return false
		}
		r.header.Set("Content-Type", "text/plain; charset=utf-8")
		r.body = content.Bytes()
		return true
	})
}

func (l *Loopback) ResponseJSON(h abi.Handle, content abi.CString) abi.Status {
	return mutate(l, "ResponseJSON", h, func(r *response) bool {
		if content.IsNull() {
			return false
		}
		r.header.Set("Content-Type", "application/json; charset=utf-8")
		r.body = content.Bytes()
		return true
	})
}

func (l *Loopback) ResponseStatus(h abi.Handle, code uint16) abi.Status {
	return mutate(l, "ResponseStatus", h, func(r *response) bool {
		if code < 100 || code > 999 {
			return false
		}
		r.status = int(code)
		return true
	})
}

func (l *Loopback) ResponseHeader(h abi.Handle, name, value abi.CString) abi.Status {
	return mutate(l, "ResponseHeader", h, func(r *response) bool {
		if name.IsNull() || value.IsNull() || name.String() == "" {
			return false
		}
		r.header.Set(name.String(), value.String())
		return true
	})
}

func (l *Loopback) ResponseCookie(h abi.Handle, name, value abi.CString) abi.Status {
	return mutate(l, "ResponseCookie", h, func(r *response) bool {
		if name.IsNull() || value.IsNull() || name.String() == "" {
			return false
		}
		r.cookies = append(r.cookies, name.String()+"="+value.String())
		return true
	})
}

func (l *Loopback) ResponseFree(h abi.Handle) { free[response](l, "ResponseFree", h) }

func (l *Loopback) ControllerNew() abi.Handle {
	return l.create("ControllerNew", &controller{})
}

func (l *Loopback) addControllerRoute(call, method string, h abi.Handle, path abi.CString, cb abi.Callback) abi.Status {
	return mutate(l, call, h, func(c *controller) bool {
		if path.IsNull() || cb == nil || c.sealed {
			return false
		}
		c.routes = append(c.routes, route{method: method, path: path.String(), handler: cb})
		return true
	})
}

func (l *Loopback) ControllerGet(h abi.Handle, path abi.CString, cb abi.Callback) abi.Status {
	return l.addControllerRoute("ControllerGet", http.MethodGet, h, path, cb)
}

func (l *Loopback) ControllerPost(h abi.Handle, path abi.CString, cb abi.Callback) abi.Status {
	return l.addControllerRoute("ControllerPost", http.MethodPost, h, path, cb)
}

func (l *Loopback) ControllerPut(h abi.Handle, path abi.CString, cb abi.Callback) abi.Status {
	return l.addControllerRoute("ControllerPut", http.MethodPut, h, path, cb)
}

func (l *Loopback) ControllerDelete(h abi.Handle, path abi.CString, cb abi.Callback) abi.Status {
	return l.addControllerRoute("ControllerDelete", http.MethodDelete, h, path, cb)
}

func (l *Loopback) ControllerPatch(h abi.Handle, path abi.CString, cb abi.Callback) abi.Status {
	return l.addControllerRoute("ControllerPatch", http.MethodPatch, h, path, cb)
}

func (l *Loopback) ControllerMiddleware(h abi.Handle, cb abi.Callback) abi.Status {
	return mutate(l, "ControllerMiddleware", h, func(c *controller) bool {
		return c.chain.Append(cb) == nil
	})
}

func (l *Loopback) ControllerFree(h abi.Handle) { free[controller](l, "ControllerFree", h) }

func (l *Loopback) MiddlewareNew() abi.Handle {
	return l.create("MiddlewareNew", &middleware{})
}

// MiddlewareCORS appends a minimal CORS entry: requests with an Origin get
// Access-Control-Allow-Origin: *, and preflights are answered with 204.
func (l *Loopback) MiddlewareCORS(h abi.Handle) abi.Status {
	return mutate(l, "MiddlewareCORS", h, func(m *middleware) bool {
		if m.chain.Append(l.corsEntry) != nil {
			return false
		}
		m.kinds = append(m.kinds, "cors")
		return true
	})
}

// MiddlewareLogger appends an entry that does nothing but continue.
func (l *Loopback) MiddlewareLogger(h abi.Handle) abi.Status {
	return mutate(l, "MiddlewareLogger", h, func(m *middleware) bool {
		if m.chain.Append(func(_, _ abi.Handle) abi.Status { return abi.OK }) != nil {
			return false
		}
		m.kinds = append(m.kinds, "logger")
		return true
	})
}

func (l *Loopback) MiddlewareCustom(h abi.Handle, cb abi.Callback) abi.Status {
	return mutate(l, "MiddlewareCustom", h, func(m *middleware) bool {
		if m.chain.Append(cb) != nil {
			return false
		}
		m.kinds = append(m.kinds, "custom")
		return true
	})
}

func (l *Loopback) MiddlewareFree(h abi.Handle) { free[middleware](l, "MiddlewareFree", h) }

func (l *Loopback) corsEntry(reqH, respH abi.Handle) abi.Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	req, ok := lookup[request](l, reqH)
	if !ok || req.header.Get("Origin") == "" {
		return abi.OK
	}
	resp, ok := lookup[response](l, respH)
	if !ok {
		return abi.OK
	}
	resp.header.Set("Access-Control-Allow-Origin", "*")
	if req.method == http.MethodOptions && req.header.Get("Access-Control-Request-Method") != "" {
		resp.status = http.StatusNoContent
		return 1
	}
	return abi.OK
}

// matchPath matches a path against a pattern with {name} segments.
func matchPath(pattern, path string) (map[string]string, bool) {
	ps := strings.Split(pattern, "/")
	xs := strings.Split(path, "/")
	if len(ps) != len(xs) {
		return nil, false
	}
	params := map[string]string{}
	for i, seg := range ps {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") && len(seg) > 2 {
			if xs[i] == "" {
				return nil, false
			}
			params[seg[1:len(seg)-1]] = xs[i]
			continue
		}
		if seg != xs[i] {
			return nil, false
		}
	}
	return params, true
}
