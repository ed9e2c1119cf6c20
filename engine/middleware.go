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
	"github.com/jrgalyan/dia/abi"
	"github.com/jrgalyan/dia/dispatch"
)

type middleware struct {
	chain dispatch.Chain
}

func (e *Engine) middleware(h abi.Handle) (*middleware, bool) {
	return get[middleware](&e.objects, h, kindMiddleware)
}

func (e *Engine) MiddlewareNew() abi.Handle {
	if !e.ready.Load() {
		return abi.Null
	}
	return e.objects.insert(kindMiddleware, &middleware{})
}

// MiddlewareCORS appends the built-in CORS entry configured by Config.CORS.
func (e *Engine) MiddlewareCORS(h abi.Handle) abi.Status {
	mw, ok := e.middleware(h)
	if !ok {
		return abi.Fail
	}
	return status(mw.chain.Append(e.corsEntry(e.cfg.CORS)))
}

// MiddlewareLogger appends the built-in access log entry.
func (e *Engine) MiddlewareLogger(h abi.Handle) abi.Status {
	mw, ok := e.middleware(h)
	if !ok {
		return abi.Fail
	}
	return status(mw.chain.Append(e.accessLogEntry(e.cfg.Log)))
}

func (e *Engine) MiddlewareCustom(h abi.Handle, cb abi.Callback) abi.Status {
	mw, ok := e.middleware(h)
	if !ok {
		return abi.Fail
	}
	return status(mw.chain.Append(cb))
}

func (e *Engine) MiddlewareFree(h abi.Handle) {
	e.objects.remove(h, kindMiddleware)
}
