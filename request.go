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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jrgalyan/dia/abi"
)

// ErrBorrowed is returned when Free is called on a view the engine owns.
var ErrBorrowed = errors.New("dia: handle is borrowed")

// Request is a read-only view over an inbound request handle. Every value it
// returns is a copy; nothing aliases engine memory.
type Request struct {
	b     abi.Boundary
	h     *handle
	owned bool
}

func (r *Request) read(get func(abi.Handle) abi.CString) (string, bool, error) {
	var (
		s  string
		ok bool
	)
	err := r.h.use(func(raw abi.Handle) error {
		s, ok = borrowed(get(raw))
		return nil
	})
	return s, ok, err
}

func (r *Request) lookup(key string, get func(abi.Handle, abi.CString) abi.CString) (string, bool, error) {
	var (
		s  string
		ok bool
	)
	err := r.h.use(func(raw abi.Handle) error {
		_, err := withCString(key, func(c abi.CString) abi.Status {
			// copy before the key buffer goes back to the pool
			s, ok = borrowed(get(raw, c))
			return abi.OK
		})
		return err
	})
	return s, ok, err
}

// Method returns the request method.
func (r *Request) Method() (string, error) {
	s, _, err := r.read(r.b.RequestMethod)
	return s, err
}

// Path returns the request path without the query string.
func (r *Request) Path() (string, error) {
	s, _, err := r.read(r.b.RequestPath)
	return s, err
}

// Header returns the first value of the named header, or "" if absent.
func (r *Request) Header(name string) (string, error) {
	s, _, err := r.lookup(name, r.b.RequestHeader)
	return s, err
}

// Query returns the first value of a query parameter and whether it was present.
func (r *Request) Query(key string) (string, bool, error) {
	return r.lookup(key, r.b.RequestQuery)
}

// Param returns a path parameter captured by the matched route.
func (r *Request) Param(name string) (string, bool, error) {
	return r.lookup(name, r.b.RequestParam)
}

// RemoteIP returns the client address: the first X-Forwarded-For entry if
// present, else X-Real-Ip, which the engine fills from the peer address.
func (r *Request) RemoteIP() (string, error) {
	xff, err := r.Header("X-Forwarded-For")
	if err != nil {
		return "", err
	}
	if xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip, nil
		}
	}
	return r.Header("X-Real-Ip")
}

// UserAgent returns the User-Agent header.
func (r *Request) UserAgent() (string, error) {
	return r.Header("User-Agent")
}

// ContentType returns the Content-Type header.
func (r *Request) ContentType() (string, error) {
	return r.Header("Content-Type")
}

// IsJSON reports whether the Content-Type names application/json.
func (r *Request) IsJSON() (bool, error) {
	ct, err := r.ContentType()
	if err != nil {
		return false, err
	}
	return strings.Contains(strings.ToLower(ct), "application/json"), nil
}

// Body returns a copy of the request body.
func (r *Request) Body() ([]byte, error) {
	var body []byte
	err := r.h.use(func(raw abi.Handle) error {
		body = r.b.RequestBody(raw).Bytes()
		return nil
	})
	return body, err
}

// BindJSON decodes the body into dst. Unknown fields and trailing data are
// rejected. Decode failures wrap ErrParse.
func (r *Request) BindJSON(dst any) error {
	body, err := r.Body()
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data after JSON value", ErrParse)
	}
	return nil
}

// Free releases a request created with Bridge.NewRequest. Requests handed to
// handlers belong to the engine and cannot be freed by the host.
func (r *Request) Free() error {
	if !r.owned {
		if !r.h.valid() {
			return ErrInvalidHandle
		}
		return ErrBorrowed
	}
	return r.h.release(r.b.RequestFree)
}
