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
	"go.uber.org/zap"

	"github.com/jrgalyan/dia/abi"
)

// Bridge is the host's connection to an engine. It creates every wrapper;
// each wrapper owns the handle it was created with and must be freed.
type Bridge struct {
	b abi.Boundary
}

// Init initialises the engine behind b.
func Init(b abi.Boundary) (*Bridge, error) {
	if b == nil {
		return nil, ErrInitFailed
	}
	if st := b.Init(); st.Failed() {
		return nil, callError("init", st, ErrInitFailed)
	}
	br := &Bridge{b: b}
	Logger().Info("dia initialized", zap.String("engine_version", br.Version()))
	return br, nil
}

// Version returns the engine's version string.
func (br *Bridge) Version() string {
	s, _ := borrowed(br.b.Version())
	return s
}

// NewApplication creates an application.
func (br *Bridge) NewApplication() (*Application, error) {
	h, err := newHandle(br.b.ApplicationNew())
	if err != nil {
		return nil, err
	}
	return &Application{b: br.b, h: h}, nil
}

// NewController creates a controller whose routes are registered under
// basePath.
func (br *Bridge) NewController(basePath string) (*Controller, error) {
	h, err := newHandle(br.b.ControllerNew())
	if err != nil {
		return nil, err
	}
	return &Controller{b: br.b, h: h, base: basePath}, nil
}

// NewMiddleware creates an empty middleware chain.
func (br *Bridge) NewMiddleware() (*MiddlewareChain, error) {
	h, err := newHandle(br.b.MiddlewareNew())
	if err != nil {
		return nil, err
	}
	return &MiddlewareChain{b: br.b, h: h}, nil
}

// NewRequest creates a standalone request owned by the caller.
func (br *Bridge) NewRequest() (*Request, error) {
	h, err := newHandle(br.b.RequestNew())
	if err != nil {
		return nil, err
	}
	return &Request{b: br.b, h: h, owned: true}, nil
}

// NewResponse creates a standalone response owned by the caller.
func (br *Bridge) NewResponse() (*Response, error) {
	h, err := newHandle(br.b.ResponseNew())
	if err != nil {
		return nil, err
	}
	return &Response{b: br.b, h: h, owned: true}, nil
}
