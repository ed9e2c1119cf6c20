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
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/jrgalyan/dia/abi"
)

// Response is a write-only builder over an outbound response handle. Each
// call mutates engine state in place and returns the same builder. The first
// failure sticks: later calls are skipped and Err reports it.
type Response struct {
	b     abi.Boundary
	h     *handle
	owned bool

	mu  sync.Mutex
	err error
}

func (r *Response) apply(call string, sentinel error, do func(abi.Handle) (abi.Status, error)) *Response {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r
	}
	r.err = r.h.use(func(raw abi.Handle) error {
		st, err := do(raw)
		if err != nil {
			return err
		}
		if st.Failed() {
			return callError(call, st, sentinel)
		}
		return nil
	})
	return r
}

// Text sets a plain text body.
func (r *Response) Text(content string) *Response {
	return r.apply("response_text", ErrTextSetFailed, func(raw abi.Handle) (abi.Status, error) {
		return withCString(content, func(c abi.CString) abi.Status { return r.b.ResponseText(raw, c) })
	})
}

// JSON sets a body that is already encoded JSON.
func (r *Response) JSON(content string) *Response {
	return r.apply("response_json", ErrJSONSetFailed, func(raw abi.Handle) (abi.Status, error) {
		return withCString(content, func(c abi.CString) abi.Status { return r.b.ResponseJSON(raw, c) })
	})
}

// JSONValue encodes v and sets it as the JSON body.
func (r *Response) JSONValue(v any) *Response {
	b, err := json.Marshal(v)
	if err != nil {
		r.fail(fmt.Errorf("%w: %w", ErrJSONSetFailed, err))
		return r
	}
	return r.JSON(string(b))
}

// Status sets the status code. Codes outside 100-999 fail without reaching
// the engine.
func (r *Response) Status(code int) *Response {
	if code < 100 || code > 999 {
		r.fail(fmt.Errorf("%w: status code %d out of range", ErrStatusSetFailed, code))
		return r
	}
	return r.apply("response_status", ErrStatusSetFailed, func(raw abi.Handle) (abi.Status, error) {
		return r.b.ResponseStatus(raw, uint16(code)), nil
	})
}

// Header sets a response header, replacing earlier values.
func (r *Response) Header(name, value string) *Response {
	return r.apply("response_header", ErrHeaderSetFailed, func(raw abi.Handle) (abi.Status, error) {
		return withCString2(name, value, func(n, v abi.CString) abi.Status { return r.b.ResponseHeader(raw, n, v) })
	})
}

// Cookie adds a Set-Cookie for name=value.
func (r *Response) Cookie(name, value string) *Response {
	return r.apply("response_cookie", ErrCookieSetFailed, func(raw abi.Handle) (abi.Status, error) {
		return withCString2(name, value, func(n, v abi.CString) abi.Status { return r.b.ResponseCookie(raw, n, v) })
	})
}

// HTML sets an HTML body.
func (r *Response) HTML(content string) *Response {
	return r.Text(content).Header("Content-Type", "text/html; charset=utf-8")
}

// Redirect answers 302 Found with a Location header.
func (r *Response) Redirect(url string) *Response {
	return r.Status(http.StatusFound).Header("Location", url)
}

// BadRequest answers 400 with an ErrorResponse carrying message.
func (r *Response) BadRequest(message string) *Response {
	return r.errorBody(http.StatusBadRequest, message)
}

// Unauthorized answers 401 with an ErrorResponse carrying message.
func (r *Response) Unauthorized(message string) *Response {
	return r.errorBody(http.StatusUnauthorized, message)
}

// Forbidden answers 403 with an ErrorResponse carrying message.
func (r *Response) Forbidden(message string) *Response {
	return r.errorBody(http.StatusForbidden, message)
}

// NotFound answers 404 with the same body the engine uses for unmatched
// routes.
func (r *Response) NotFound() *Response {
	return r.errorBody(http.StatusNotFound, "")
}

// InternalError answers 500 without leaking details.
func (r *Response) InternalError() *Response {
	return r.errorBody(http.StatusInternalServerError, "")
}

func (r *Response) errorBody(code int, message string) *Response {
	return r.Status(code).JSONValue(ErrorResponse{
		Error:   strings.ToLower(http.StatusText(code)),
		Message: message,
	})
}

// Err returns the first failure recorded on the builder.
func (r *Response) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func (r *Response) fail(err error) {
	r.mu.Lock()
	if r.err == nil {
		r.err = err
	}
	r.mu.Unlock()
}

// Free releases a response created with Bridge.NewResponse.
func (r *Response) Free() error {
	if !r.owned {
		if !r.h.valid() {
			return ErrInvalidHandle
		}
		return ErrBorrowed
	}
	return r.h.release(r.b.ResponseFree)
}
