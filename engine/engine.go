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
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/jrgalyan/dia/abi"
)

// Version is the engine version reported through the boundary.
const Version = "0.3.0"

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger. It takes precedence over
// Config.LogLevel.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
			e.explicitLog = true
		}
	}
}

// Engine is the reference implementation of abi.Boundary. It serves
// applications with net/http, matches routes with chi and keeps every native
// object in a handle table.
type Engine struct {
	cfg         Config
	log         *zap.Logger
	explicitLog bool

	initMu sync.Mutex
	ready  atomic.Bool

	objects table
	version abi.CString

	mu      sync.Mutex
	running map[*application]struct{}
}

var _ abi.Boundary = (*Engine)(nil)

// New creates an engine. Fields left unset in cfg take their DefaultConfig
// values. The engine must be initialised with Init before use.
func New(cfg Config, opts ...Option) *Engine {
	if merged, err := withDefaults(cfg); err == nil {
		cfg = merged
	}
	e := &Engine{
		cfg:     cfg,
		log:     Logger(),
		running: make(map[*application]struct{}),
	}
	e.version, _ = abi.NewCString(Version)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Init prepares the engine. Calling it again is a no-op.
func (e *Engine) Init() abi.Status {
	e.initMu.Lock()
	defer e.initMu.Unlock()
	if e.ready.Load() {
		return abi.OK
	}
	if !e.explicitLog && e.cfg.LogLevel != "" {
		l, err := buildLogger(e.cfg.LogLevel)
		if err != nil {
			return abi.Fail
		}
		e.log = l
	}
	e.ready.Store(true)
	e.log.Info("engine initialized", zap.String("version", Version))
	return abi.OK
}

// Version returns the engine version. The result is static and must not be
// modified.
func (e *Engine) Version() abi.CString { return e.version }

// Live returns the number of handles that have not been freed.
func (e *Engine) Live() int { return e.objects.len() }

// Shutdown gracefully stops every running application and waits for their
// Run calls to return or for ctx to end.
func (e *Engine) Shutdown(ctx context.Context) error {
	e.mu.Lock()
	apps := make([]*application, 0, len(e.running))
	for app := range e.running {
		apps = append(apps, app)
	}
	e.mu.Unlock()

	var errs []error
	for _, app := range apps {
		done := app.stop()
		select {
		case <-done:
		case <-ctx.Done():
			errs = append(errs, ctx.Err())
		}
	}
	return errors.Join(errs...)
}

func (e *Engine) track(app *application, on bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if on {
		e.running[app] = struct{}{}
	} else {
		delete(e.running, app)
	}
}

func status(err error) abi.Status {
	if err != nil {
		return abi.Fail
	}
	return abi.OK
}
