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

package abitest

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/jrgalyan/dia/abi"
	"github.com/jrgalyan/dia/dispatch"
)

// ErrUnknownHandle is returned by Serve for a handle that is not a live
// application.
var ErrUnknownHandle = errors.New("abitest: unknown application handle")

// Result is a delivered synthetic response.
type Result struct {
	Status  int
	Header  http.Header
	Cookies []string
	Body    []byte
	Outcome dispatch.Outcome
}

// Serve dispatches a synthetic request through the application chain, the
// matched route's controller chain and the route handler. The last route
// registered for method and path wins. Unmatched requests still run the
// application chain and then get 404. The request and response handles are
// freed before Serve returns. Serve may be called concurrently.
func (l *Loopback) Serve(app abi.Handle, method, target string, header http.Header, body []byte) (*Result, error) {
	u, err := url.ParseRequestURI(target)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	a, ok := lookup[application](l, app)
	if !ok {
		l.mu.Unlock()
		return nil, ErrUnknownHandle
	}
	var (
		matched *route
		params  = map[string]string{}
	)
	for i := len(a.routes) - 1; i >= 0; i-- {
		rt := a.routes[i]
		if rt.method != method {
			continue
		}
		if p, ok := matchPath(rt.path, u.Path); ok {
			matched, params = &rt, p
			break
		}
	}
	hdr := header.Clone()
	if hdr == nil {
		hdr = http.Header{}
	}
	req := &request{
		method: method,
		path:   u.Path,
		header: hdr,
		query:  u.Query(),
		params: params,
		body:   append([]byte(nil), body...),
	}
	resp := &response{header: http.Header{}}
	reqH := l.insert(req)
	respH := l.insert(resp)
	stages := []*dispatch.Chain{&a.chain}
	l.mu.Unlock()

	terminal := l.notFound
	if matched != nil {
		terminal = matched.handler
		if matched.chain != nil {
			stages = append(stages, matched.chain)
		}
	}
	out := dispatch.Run(reqH, respH, terminal, stages...)

	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.objects, reqH)
	delete(l.objects, respH)
	status := resp.status
	if status == 0 {
		status = http.StatusOK
	}
	return &Result{
		Status:  status,
		Header:  resp.header,
		Cookies: resp.cookies,
		Body:    resp.body,
		Outcome: out,
	}, nil
}

func (l *Loopback) notFound(_, respH abi.Handle) abi.Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	if resp, ok := lookup[response](l, respH); ok {
		resp.status = http.StatusNotFound
		resp.header.Set("Content-Type", "application/json; charset=utf-8")
		resp.body = []byte(`{"error":"not found"}`)
	}
	return abi.OK
}

// Routes returns "METHOD path" for every route of the application, in
// registration order.
func (l *Loopback) Routes(app abi.Handle) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := lookup[application](l, app)
	if !ok {
		return nil
	}
	out := make([]string, len(a.routes))
	for i, rt := range a.routes {
		out[i] = rt.method + " " + rt.path
	}
	return out
}

// Address returns the host and port last set on the application.
func (l *Loopback) Address(app abi.Handle) (string, uint16, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := lookup[application](l, app)
	if !ok {
		return "", 0, false
	}
	return a.host, a.port, true
}

// Runs returns how many times ApplicationRun succeeded for the application.
func (l *Loopback) Runs(app abi.Handle) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := lookup[application](l, app)
	if !ok {
		return 0
	}
	return a.runs
}

// Applications returns the live application handles in creation order, for
// tests that build applications through a host wrapper and need the raw
// handle to call Serve.
func (l *Loopback) Applications() []abi.Handle {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []abi.Handle
	for h := abi.Handle(1); h <= l.next; h++ {
		if _, ok := lookup[application](l, h); ok {
			out = append(out, h)
		}
	}
	return out
}
