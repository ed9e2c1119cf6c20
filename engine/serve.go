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
	"errors"
	"io"
	"net"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/jrgalyan/dia/abi"
	"github.com/jrgalyan/dia/dispatch"
)

// handled is returned by built-in entries that have answered the request
// themselves, stopping the chain.
const handled abi.Status = 1

// Handler returns the application's router for embedding in another server.
// Routes must not be added while it is serving.
func (e *Engine) Handler(h abi.Handle) (http.Handler, bool) {
	app, ok := e.application(h)
	if !ok {
		return nil, false
	}
	return app.mux, true
}

func (e *Engine) routeHandler(app *application, rt route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e.serveHTTP(w, r, rt.handler, &app.chain, rt.chain)
	}
}

// fallbackHandler answers unmatched requests. The application chain still
// runs first, so entries like CORS can answer preflights for any path.
func (e *Engine) fallbackHandler(app *application, code int) http.HandlerFunc {
	msg := strings.ToLower(http.StatusText(code))
	terminal := func(_, resp abi.Handle) abi.Status {
		if rs, ok := e.response(resp); ok {
			rs.reset(code, msg)
		}
		return abi.OK
	}
	return func(w http.ResponseWriter, r *http.Request) {
		e.serveHTTP(w, r, terminal, &app.chain)
	}
}

// serveHTTP builds the RouteContext for r, runs the chain stages and the
// terminal handler, then delivers the response and frees both handles.
func (e *Engine) serveHTTP(w http.ResponseWriter, r *http.Request, terminal abi.Callback, stages ...*dispatch.Chain) {
	req, err := e.readRequest(w, r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request entity too large")
			return
		}
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}

	resp := newResponse()
	reqH := e.objects.insert(kindRequest, req)
	respH := e.objects.insert(kindResponse, resp)
	defer func() {
		e.objects.remove(reqH, kindRequest)
		e.objects.remove(respH, kindResponse)
	}()

	out, ok := e.run(reqH, respH, terminal, stages)
	switch {
	case !ok:
		resp.reset(http.StatusInternalServerError, "internal server error")
	case out.Aborted:
		e.log.Debug("chain stopped",
			zap.String("path", req.path),
			zap.Int("entries", out.Ran),
			zap.Int32("code", int32(out.Code)),
		)
	}

	if _, err := resp.deliver(w, r, e.cfg.Gzip); err != nil {
		e.log.Debug("response write failed", zap.Error(err))
	}
}

// run invokes the chain, turning a panic into ok == false.
func (e *Engine) run(req, resp abi.Handle, terminal abi.Callback, stages []*dispatch.Chain) (out dispatch.Outcome, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			e.log.Error("panic recovered", zap.Any("err", rec), zap.ByteString("stack", debug.Stack()))
			ok = false
		}
	}()
	return dispatch.Run(req, resp, terminal, stages...), true
}

// readRequest copies r into a native request. Bodies over MaxBodyBytes
// fail with *http.MaxBytesError.
func (e *Engine) readRequest(w http.ResponseWriter, r *http.Request) (*request, error) {
	req := newRequest()
	req.method = r.Method
	req.path = r.URL.Path
	req.raw = r.URL.RawQuery
	req.query = r.URL.Query()
	req.header = r.Header.Clone()
	if req.header.Get("X-Real-Ip") == "" {
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			req.header.Set("X-Real-Ip", host)
		}
	}
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for i, k := range rctx.URLParams.Keys {
			req.params[k] = rctx.URLParams.Values[i]
		}
	}

	if r.Body == nil || r.Body == http.NoBody {
		return req, nil
	}
	body := r.Body
	if limit := e.cfg.MaxBodyBytes; limit > 0 {
		if r.ContentLength > limit {
			return nil, &http.MaxBytesError{Limit: limit}
		}
		body = http.MaxBytesReader(w, r.Body, limit)
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	req.body = b
	return req, nil
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
