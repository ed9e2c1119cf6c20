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
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"golang.org/x/net/http/httpguts"

	"github.com/jrgalyan/dia/abi"
)

// response is the native side of a response handle. Nothing reaches the
// client until the chain has finished and deliver is called.
type response struct {
	mu      sync.Mutex
	status  int
	header  http.Header
	cookies []*http.Cookie
	body    []byte

	// delivered run after the response was written, with the final status.
	delivered []func(status int)
}

func newResponse() *response {
	return &response{header: http.Header{}}
}

func (rs *response) setBody(contentType string, body []byte) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.header.Set("Content-Type", contentType)
	rs.body = body
}

func (rs *response) code() int {
	if rs.status == 0 {
		return http.StatusOK
	}
	return rs.status
}

func (rs *response) onDelivered(fn func(status int)) {
	rs.mu.Lock()
	rs.delivered = append(rs.delivered, fn)
	rs.mu.Unlock()
}

// reset discards everything written so far and sets a JSON error body.
func (rs *response) reset(status int, msg string) {
	rs.mu.Lock()
	rs.status = status
	rs.header = http.Header{}
	rs.cookies = nil
	rs.mu.Unlock()
	body, _ := json.Marshal(map[string]string{"error": msg})
	rs.setBody("application/json; charset=utf-8", body)
}

// deliver writes the response to w and returns the status sent.
func (rs *response) deliver(w http.ResponseWriter, r *http.Request, gz GzipConfig) (int, error) {
	rs.mu.Lock()
	status := rs.code()
	h := w.Header()
	for k, vals := range rs.header {
		h[k] = append([]string(nil), vals...)
	}
	for _, c := range rs.cookies {
		http.SetCookie(w, c)
	}
	body := rs.body
	hooks := rs.delivered
	rs.delivered = nil
	rs.mu.Unlock()

	withBody := bodyAllowed(status)
	if withBody && gz.Enabled && acceptsGzip(r) {
		body = compressBody(h, body, gz)
	}
	if withBody {
		h.Set("Content-Length", strconv.Itoa(len(body)))
	}
	w.WriteHeader(status)

	var err error
	if withBody && r.Method != http.MethodHead {
		_, err = w.Write(body)
	}
	for _, fn := range hooks {
		fn(status)
	}
	return status, err
}

func bodyAllowed(status int) bool {
	return status >= 200 && status != http.StatusNoContent && status != http.StatusNotModified
}

func (e *Engine) response(h abi.Handle) (*response, bool) {
	return get[response](&e.objects, h, kindResponse)
}

func (e *Engine) ResponseNew() abi.Handle {
	if !e.ready.Load() {
		return abi.Null
	}
	return e.objects.insert(kindResponse, newResponse())
}

// ResponseText sets a text/plain body.
func (e *Engine) ResponseText(h abi.Handle, content abi.CString) abi.Status {
	rs, ok := e.response(h)
	if !ok || content.IsNull() {
		return abi.Fail
	}
	rs.setBody("text/plain; charset=utf-8", content.Bytes())
	return abi.OK
}

// ResponseJSON sets an application/json body. Content that is not valid JSON
// is rejected.
func (e *Engine) ResponseJSON(h abi.Handle, content abi.CString) abi.Status {
	rs, ok := e.response(h)
	if !ok || content.IsNull() {
		return abi.Fail
	}
	body := content.Bytes()
	if !json.Valid(body) {
		return abi.Fail
	}
	rs.setBody("application/json; charset=utf-8", body)
	return abi.OK
}

func (e *Engine) ResponseStatus(h abi.Handle, code uint16) abi.Status {
	rs, ok := e.response(h)
	if !ok || code < 100 || code > 999 {
		return abi.Fail
	}
	rs.mu.Lock()
	rs.status = int(code)
	rs.mu.Unlock()
	return abi.OK
}

// ResponseHeader sets a header, replacing earlier values. Names and values
// that are not valid on the wire are rejected.
func (e *Engine) ResponseHeader(h abi.Handle, name, value abi.CString) abi.Status {
	rs, ok := e.response(h)
	if !ok || name.IsNull() || value.IsNull() {
		return abi.Fail
	}
	k, v := name.String(), value.String()
	if !httpguts.ValidHeaderFieldName(k) || !httpguts.ValidHeaderFieldValue(v) {
		return abi.Fail
	}
	rs.mu.Lock()
	rs.header.Set(k, v)
	rs.mu.Unlock()
	return abi.OK
}

// ResponseCookie adds a Set-Cookie with Path=/ and HttpOnly.
func (e *Engine) ResponseCookie(h abi.Handle, name, value abi.CString) abi.Status {
	rs, ok := e.response(h)
	if !ok || name.IsNull() || value.IsNull() {
		return abi.Fail
	}
	c := &http.Cookie{
		Name:     name.String(),
		Value:    value.String(),
		Path:     "/",
		HttpOnly: true,
	}
	if c.Valid() != nil {
		return abi.Fail
	}
	rs.mu.Lock()
	rs.cookies = append(rs.cookies, c)
	rs.mu.Unlock()
	return abi.OK
}

func (e *Engine) ResponseFree(h abi.Handle) {
	e.objects.remove(h, kindResponse)
}
