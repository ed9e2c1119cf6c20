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
	"math"

	"go.uber.org/zap"

	"github.com/jrgalyan/dia/abi"
)

// Handler is a terminal route handler. It has no result: the response is
// whatever the handler wrote through c.Response before returning.
type Handler func(c *Context)

// Middleware is a chain entry. Returning Continue passes control to the next
// entry or the route handler; any other value stops the chain and the
// response is delivered as it stands.
type Middleware func(c *Context) int

const (
	Continue = 0
	Halt     = 1
)

// Context is the host view of one request's RouteContext. The engine owns
// both handles; the views stop working as soon as the callback returns, so a
// Context must not be retained.
type Context struct {
	Request  *Request
	Response *Response
}

func newContext(b abi.Boundary, req, resp abi.Handle) *Context {
	return &Context{
		Request:  &Request{b: b, h: &handle{raw: req}},
		Response: &Response{b: b, h: &handle{raw: resp}},
	}
}

// done invalidates the borrowed views without freeing anything.
func (c *Context) done() {
	_ = c.Request.h.release(nil)
	_ = c.Response.h.release(nil)
}

// Next reports Continue unless a response call failed, in which case the
// chain is stopped with Halt.
func (c *Context) Next() int {
	if c.Response.Err() != nil {
		return Halt
	}
	return Continue
}

// Reject writes status and a JSON error body and stops the chain.
func (c *Context) Reject(status int, body ErrorResponse) int {
	c.Response.Status(status).JSONValue(body)
	return Halt
}

func handlerCallback(b abi.Boundary, h Handler) abi.Callback {
	return func(req, resp abi.Handle) abi.Status {
		c := newContext(b, req, resp)
		defer c.done()
		h(c)
		if err := c.Response.Err(); err != nil {
			Logger().Warn("response not fully applied", zap.Error(err))
		}
		return abi.OK
	}
}

func middlewareCallback(b abi.Boundary, mw Middleware) abi.Callback {
	return func(req, resp abi.Handle) abi.Status {
		c := newContext(b, req, resp)
		defer c.done()
		code := mw(c)
		if err := c.Response.Err(); err != nil {
			Logger().Warn("middleware response not fully applied", zap.Error(err))
		}
		return chainStatus(code)
	}
}

// chainStatus narrows a middleware result to the boundary's width. Codes
// that do not fit become Fail, so a nonzero result never truncates to
// Continue.
func chainStatus(code int) abi.Status {
	if code < math.MinInt32 || code > math.MaxInt32 {
		return abi.Fail
	}
	return abi.Status(code)
}
