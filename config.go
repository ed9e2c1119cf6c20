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
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the application's bind configuration.
//
// Struct tags:
//   - env: environment variable name, looked up with the DIA_ prefix.
type Config struct {
	// Host is the address the engine binds to.
	// Env: DIA_HOST
	Host string `env:"HOST"`

	// Port is the TCP port the engine binds to.
	// Env: DIA_PORT
	Port uint16 `env:"PORT"`
}

// DefaultConfig matches the engine's own defaults.
func DefaultConfig() Config {
	return Config{Host: "127.0.0.1", Port: 8080}
}

// LoadConfig reads DIA_* environment variables over DefaultConfig. A variable
// that is set always wins, so DIA_PORT=0 asks for an ephemeral port.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "DIA_"}); err != nil {
		return Config{}, fmt.Errorf("error getting env configs: %w", err)
	}
	return cfg, nil
}
