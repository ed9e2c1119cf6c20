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
	"net/url"
	"sync"
	"time"

	"github.com/jrgalyan/dia/abi"
)

// request is the native side of a request handle. Every accessor result is
// written into scratch, so it is only valid until the next accessor call on
// the same handle.
type request struct {
	mu      sync.Mutex
	method  string
	path    string
	raw     string
	query   url.Values
	header  http.Header
	params  map[string]string
	body    []byte
	scratch []byte

	// received is when the engine started handling the request.
	received time.Time
}

func newRequest() *request {
	return &request{
		method:   http.MethodGet,
		path:     "/",
		query:    url.Values{},
		header:   http.Header{},
		params:   map[string]string{},
		received: time.Now(),
	}
}

func (r *request) borrow(b []byte) abi.CString {
	r.scratch = abi.BorrowBytes(r.scratch, b)
	return r.scratch
}

func (r *request) borrowString(s string) abi.CString {
	return r.borrow([]byte(s))
}

func (e *Engine) request(h abi.Handle) (*request, bool) {
	return get[request](&e.objects, h, kindRequest)
}

// RequestNew creates a standalone GET / request with no headers or body.
func (e *Engine) RequestNew() abi.Handle {
	if !e.ready.Load() {
		return abi.Null
	}
	return e.objects.insert(kindRequest, newRequest())
}

func (e *Engine) RequestMethod(h abi.Handle) abi.CString {
	r, ok := e.request(h)
	if !ok {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.borrowString(r.method)
}

func (e *Engine) RequestPath(h abi.Handle) abi.CString {
	r, ok := e.request(h)
	if !ok {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.borrowString(r.path)
}

// RequestHeader returns the first value of the named header, or nil when the
// header is absent.
func (e *Engine) RequestHeader(h abi.Handle, name abi.CString) abi.CString {
	r, ok := e.request(h)
	if !ok || name.IsNull() {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	vals := r.header[http.CanonicalHeaderKey(name.String())]
	if len(vals) == 0 {
		return nil
	}
	return r.borrowString(vals[0])
}

// RequestQuery returns the first value of the query parameter. A parameter
// present without a value yields an empty string, not nil.
func (e *Engine) RequestQuery(h abi.Handle, key abi.CString) abi.CString {
	r, ok := e.request(h)
	if !ok || key.IsNull() {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	vals, ok := r.query[key.String()]
	if !ok || len(vals) == 0 {
		return nil
	}
	return r.borrowString(vals[0])
}

func (e *Engine) RequestParam(h abi.Handle, name abi.CString) abi.CString {
	r, ok := e.request(h)
	if !ok || name.IsNull() {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.params[name.String()]
	if !ok {
		return nil
	}
	return r.borrowString(v)
}

// RequestBody returns the raw body. Embedded NUL bytes are preserved.
func (e *Engine) RequestBody(h abi.Handle) abi.CString {
	r, ok := e.request(h)
	if !ok {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.borrow(r.body)
}

func (e *Engine) RequestFree(h abi.Handle) {
	e.objects.remove(h, kindRequest)
}
