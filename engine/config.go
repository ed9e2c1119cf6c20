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
	"compress/gzip"
	"fmt"
	"net"
	"net/http"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// Config holds engine-wide settings. Bind address and routes are per
// application and arrive through the boundary instead.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env tag lookups (caarlos0/env).
//   - env:       environment variable name, looked up under DIA_ENGINE_.
type Config struct {
	// DefaultHost and DefaultPort are used by applications that never set
	// their own.
	// Env: DIA_ENGINE_DEFAULT_HOST, DIA_ENGINE_DEFAULT_PORT
	DefaultHost string `env:"DEFAULT_HOST"`
	DefaultPort uint16 `env:"DEFAULT_PORT"`

	// Server timeouts.
	// Env: DIA_ENGINE_READ_TIMEOUT etc. (e.g. "15s")
	ReadTimeout       time.Duration `env:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `env:"WRITE_TIMEOUT"`
	IdleTimeout       time.Duration `env:"IDLE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: DIA_ENGINE_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// NoSignals disables stopping on SIGINT/SIGTERM.
	// Env: DIA_ENGINE_NO_SIGNALS
	NoSignals bool `env:"NO_SIGNALS"`

	// MaxBodyBytes caps request bodies. Larger bodies are answered with 413
	// before any host code runs.
	// Env: DIA_ENGINE_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`

	// LogLevel builds a production zap logger at Init when no logger was
	// given with WithLogger. Empty keeps logging off.
	// Env: DIA_ENGINE_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	Gzip GzipConfig      `envPrefix:"GZIP_"`
	CORS CORSConfig      `envPrefix:"CORS_"`
	Log  AccessLogConfig `envPrefix:"LOG_"`

	// OnListen is called with the bound address once an application's
	// listener is open.
	OnListen func(net.Addr)
}

// GzipConfig configures compression of delivered responses.
type GzipConfig struct {
	// Enabled turns compression on. Env: DIA_ENGINE_GZIP_ENABLED
	Enabled bool `env:"ENABLED"`

	// Level is the gzip compression level (1-9, or gzip.DefaultCompression).
	// Env: DIA_ENGINE_GZIP_LEVEL
	Level int `env:"LEVEL"`

	// MinLength is the smallest body, in bytes, that gets compressed.
	// Env: DIA_ENGINE_GZIP_MIN_LENGTH
	MinLength int `env:"MIN_LENGTH"`
}

// CORSConfig configures the built-in CORS entry.
type CORSConfig struct {
	// AllowOrigins is the list of origins permitted to make cross-origin requests.
	// Use ["*"] to allow all origins. Default: ["*"].
	AllowOrigins []string `env:"ALLOW_ORIGINS" envSeparator:","`

	// AllowMethods is the list of HTTP methods allowed for cross-origin requests.
	AllowMethods []string `env:"ALLOW_METHODS" envSeparator:","`

	// AllowHeaders is the list of request headers allowed in cross-origin requests.
	AllowHeaders []string `env:"ALLOW_HEADERS" envSeparator:","`

	// ExposeHeaders is the list of response headers that browsers are allowed to access.
	ExposeHeaders []string `env:"EXPOSE_HEADERS" envSeparator:","`

	// MaxAge is the duration in seconds that preflight responses can be cached.
	MaxAge int `env:"MAX_AGE"`

	// AllowCredentials reflects the request Origin instead of "*" and sets
	// Access-Control-Allow-Credentials.
	AllowCredentials bool `env:"ALLOW_CREDENTIALS"`
}

// AccessLogConfig configures the built-in access log entry.
type AccessLogConfig struct {
	// RedactParams lists path parameter names whose values are masked.
	RedactParams []string `env:"REDACT_PARAMS" envSeparator:","`

	// RedactQuery lists query parameter names whose values are masked.
	RedactQuery []string `env:"REDACT_QUERY" envSeparator:","`

	// Mask replaces redacted values. Default: "***".
	Mask string `env:"MASK"`
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		DefaultHost:       "127.0.0.1",
		DefaultPort:       8080,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   30 * time.Second,
		MaxBodyBytes:      10 << 20,
		Gzip: GzipConfig{
			Level:     gzip.DefaultCompression,
			MinLength: 256,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{
				http.MethodGet,
				http.MethodPost,
				http.MethodPut,
				http.MethodPatch,
				http.MethodDelete,
				http.MethodHead,
				http.MethodOptions,
			},
			AllowHeaders: []string{
				"Origin",
				"Content-Type",
				"Accept",
				"Authorization",
				"X-Request-Id",
			},
			MaxAge: 86400,
		},
		Log: AccessLogConfig{Mask: "***"},
	}
}

// LoadConfig reads DIA_ENGINE_* environment variables and fills everything
// left unset from DefaultConfig.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "DIA_ENGINE_"}); err != nil {
		return Config{}, fmt.Errorf("error getting env configs: %w", err)
	}
	return withDefaults(cfg)
}

func withDefaults(cfg Config) (Config, error) {
	if err := mergo.Merge(&cfg, DefaultConfig()); err != nil {
		return Config{}, fmt.Errorf("error merging configs: %w", err)
	}
	return cfg, nil
}
