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
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimitConfig configures a RateLimiter.
type RateLimitConfig struct {
	// Limit is the number of requests admitted per key in one window.
	// Default: 10.
	Limit int

	// Window is the length of a counting window. Default: 1 second.
	Window time.Duration

	// SweepInterval is how often idle keys are dropped. Sweeping happens
	// inside Allow; there is no background goroutine. Default: 1 minute.
	SweepInterval time.Duration

	// KeyFunc extracts a client key from the request. When nil, the first IP
	// in X-Forwarded-For is used, then X-Real-Ip (which the reference engine
	// fills from the peer address).
	KeyFunc func(*Context) (string, error)

	// Now is the clock. Default: time.Now.
	Now func() time.Time
}

type window struct {
	start time.Time
	count int
}

// RateLimiter holds fixed-window counters shared by every request that passes
// through its middleware. It is safe for concurrent use. Create one per limit
// and pass it to RateLimit.
type RateLimiter struct {
	cfg RateLimitConfig

	mu        sync.Mutex
	windows   map[string]*window
	lastSweep time.Time
}

// NewRateLimiter applies defaults to cfg and returns an empty limiter.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.Limit < 1 {
		cfg.Limit = 10
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Second
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = time.Minute
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = defaultKeyFunc
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &RateLimiter{
		cfg:       cfg,
		windows:   make(map[string]*window),
		lastSweep: cfg.Now(),
	}
}

// Allow counts one request for key. It reports whether the request is within
// the limit and, if not, how long until the key's window resets.
func (l *RateLimiter) Allow(key string) (bool, time.Duration) {
	now := l.cfg.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= l.cfg.SweepInterval {
		for k, w := range l.windows {
			if now.Sub(w.start) >= l.cfg.Window {
				delete(l.windows, k)
			}
		}
		l.lastSweep = now
	}

	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= l.cfg.Window {
		w = &window{start: now}
		l.windows[key] = w
	}
	if w.count >= l.cfg.Limit {
		return false, w.start.Add(l.cfg.Window).Sub(now)
	}
	w.count++
	return true, 0
}

// Len returns the number of tracked keys.
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}

// RateLimit creates a middleware admitting at most Limit requests per key per
// window. Rejected requests get 429 with a Retry-After header. A request
// whose key cannot be read is refused with 500.
func RateLimit(l *RateLimiter) Middleware {
	if l == nil {
		panic("dia: nil rate limiter")
	}
	return func(c *Context) int {
		key, err := l.cfg.KeyFunc(c)
		if err != nil {
			Logger().Sugar().Warnf("rate limit key: %v", err)
			return c.Reject(http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Message: "rate limit key unavailable"})
		}
		ok, wait := l.Allow(key)
		if ok {
			return Continue
		}
		retryAfter := int(math.Ceil(wait.Seconds()))
		if retryAfter < 1 {
			retryAfter = 1
		}
		c.Response.Header("Retry-After", strconv.Itoa(retryAfter))
		return c.Reject(http.StatusTooManyRequests, ErrorResponse{Error: "rate limit exceeded"})
	}
}

func defaultKeyFunc(c *Context) (string, error) {
	return c.Request.RemoteIP()
}
