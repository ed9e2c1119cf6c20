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
	"maps"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jrgalyan/dia/abi"
)

// accessLogEntry returns the built-in logger entry. It assigns a request id
// (X-Request-Id, or a new UUIDv7), echoes it on the response and logs one
// line once the response has been delivered.
func (e *Engine) accessLogEntry(cfg AccessLogConfig) abi.Callback {
	san := newSanitizer(cfg)
	return func(reqH, respH abi.Handle) abi.Status {
		req, ok := e.request(reqH)
		if !ok {
			return abi.OK
		}
		rs, ok := e.response(respH)
		if !ok {
			return abi.OK
		}

		req.mu.Lock()
		id := req.header.Get("X-Request-Id")
		if id == "" {
			id = newRequestID()
			req.header.Set("X-Request-Id", id)
		}
		method, path, rawQuery := req.method, req.path, req.raw
		params := maps.Clone(req.params)
		received := req.received
		req.mu.Unlock()

		rs.mu.Lock()
		rs.header.Set("X-Request-Id", id)
		rs.mu.Unlock()

		rs.onDelivered(func(status int) {
			e.log.Info("request",
				zap.String("id", id),
				zap.String("method", method),
				zap.String("path", san.Path(path, params)),
				zap.String("query", san.Query(rawQuery)),
				zap.Int("status", status),
				zap.Duration("duration", time.Since(received)),
			)
		})
		return abi.OK
	}
}

func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
