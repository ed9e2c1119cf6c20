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
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jrgalyan/dia/abi"
)

// ApplicationRun freezes the application and serves it until a shutdown
// signal, Engine.Shutdown or a raw ApplicationFree from another goroutine.
// The dia host never issues that last one while Run is in flight: its Free
// waits for Run to return, so host programs stop a running application with
// a signal or Engine.Shutdown. It fails if the application is already
// running or its address cannot be bound.
func (e *Engine) ApplicationRun(h abi.Handle) abi.Status {
	app, ok := e.application(h)
	if !ok {
		return abi.Fail
	}

	app.mu.Lock()
	if app.running {
		app.mu.Unlock()
		return abi.Fail
	}
	app.running = true
	app.freeze()
	rs := &runState{quit: make(chan struct{}), done: make(chan struct{})}
	app.run = rs
	addr := net.JoinHostPort(app.host, strconv.Itoa(int(app.port)))
	app.mu.Unlock()

	e.track(app, true)
	defer func() {
		e.track(app, false)
		app.mu.Lock()
		app.running = false
		app.run = nil
		app.mu.Unlock()
		close(rs.done)
	}()

	if err := e.listenAndServe(app.mux, addr, rs.quit); err != nil {
		e.log.Error("server error", zap.String("addr", addr), zap.Error(err))
		return abi.Fail
	}
	return abi.OK
}

// listenAndServe runs handler on addr until quit is closed or a shutdown
// signal arrives, then shuts down gracefully.
func (e *Engine) listenAndServe(handler http.Handler, addr string, quit <-chan struct{}) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	hs := &http.Server{
		Handler:           handler,
		ReadTimeout:       e.cfg.ReadTimeout,
		WriteTimeout:      e.cfg.WriteTimeout,
		IdleTimeout:       e.cfg.IdleTimeout,
		ReadHeaderTimeout: e.cfg.ReadHeaderTimeout,
		ErrorLog:          zap.NewStdLog(e.log),
	}

	e.log.Info("server starting", zap.String("addr", ln.Addr().String()))
	if e.cfg.OnListen != nil {
		e.cfg.OnListen(ln.Addr())
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		if err := hs.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		var sigs chan os.Signal
		if !e.cfg.NoSignals {
			sigs = make(chan os.Signal, 1)
			signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigs)
		}
		select {
		case sig := <-sigs:
			e.log.Info("shutdown signal received", zap.String("signal", sig.String()))
		case <-quit:
			e.log.Info("shutdown requested")
		case <-ctx.Done():
		}
		sctx, cancel := context.WithTimeout(context.Background(), e.cfg.ShutdownTimeout)
		defer cancel()
		if err := hs.Shutdown(sctx); err != nil {
			e.log.Error("shutdown error", zap.Error(err))
			return err
		}
		return nil
	})
	return g.Wait()
}
