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
	"net/http"
	"strconv"
	"strings"

	"github.com/jrgalyan/dia/abi"
)

// corsEntry returns the built-in CORS entry. Preflight requests are answered
// with 204 and stop the chain. Other requests from an allowed origin get the
// CORS response headers and continue.
func (e *Engine) corsEntry(cfg CORSConfig) abi.Callback {
	allowMethodsStr := strings.Join(cfg.AllowMethods, ", ")
	allowHeadersStr := strings.Join(cfg.AllowHeaders, ", ")
	exposeHeadersStr := strings.Join(cfg.ExposeHeaders, ", ")
	maxAgeStr := strconv.Itoa(cfg.MaxAge)
	allowAll := len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*"

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
		origin := req.header.Get("Origin")
		preflight := req.method == http.MethodOptions &&
			req.header.Get("Access-Control-Request-Method") != ""
		req.mu.Unlock()

		if origin == "" {
			return abi.OK
		}
		if !allowAll && !originAllowed(origin, cfg.AllowOrigins) {
			return abi.OK
		}

		allowOriginValue := "*"
		if cfg.AllowCredentials || !allowAll {
			allowOriginValue = origin
		}

		rs.mu.Lock()
		defer rs.mu.Unlock()
		h := rs.header
		h.Set("Access-Control-Allow-Origin", allowOriginValue)
		if cfg.AllowCredentials {
			h.Set("Access-Control-Allow-Credentials", "true")
		}

		if preflight {
			h.Set("Access-Control-Allow-Methods", allowMethodsStr)
			h.Set("Access-Control-Allow-Headers", allowHeadersStr)
			if cfg.MaxAge > 0 {
				h.Set("Access-Control-Max-Age", maxAgeStr)
			}
			h.Set("Vary", "Origin, Access-Control-Request-Method, Access-Control-Request-Headers")
			rs.status = http.StatusNoContent
			return handled
		}

		if exposeHeadersStr != "" {
			h.Set("Access-Control-Expose-Headers", exposeHeadersStr)
		}
		h.Add("Vary", "Origin")
		return abi.OK
	}
}

func originAllowed(origin string, allowed []string) bool {
	for _, a := range allowed {
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}
