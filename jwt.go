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
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("dia: missing Authorization header")
	ErrTokenScheme  = errors.New("dia: invalid Authorization scheme")
)

// JWTConfig configures the JWT middleware.
// Provide at least a Keyfunc to resolve the verification key.
// Optional fields can enforce issuer/audience and clock skew.
// If Optional is true, requests without Authorization header pass through unmodified.
// Only Bearer tokens are considered.
// Errors result in 401 with WWW-Authenticate and JSON error payload.
type JWTConfig struct {
	Keyfunc  jwt.Keyfunc
	Issuer   string
	Audience string
	Skew     time.Duration
	Optional bool

	// PublicPaths are path prefixes that skip authentication entirely.
	PublicPaths []string
}

// ParseBearer validates the request's Bearer token against cfg and returns
// its claims. Handlers behind JWTAuth use it to read claims, since nothing
// is carried between chain entries except the request and response.
func ParseBearer(c *Context, cfg JWTConfig) (jwt.MapClaims, error) {
	authz, err := c.Request.Header("Authorization")
	if err != nil {
		return nil, err
	}
	if authz == "" {
		return nil, ErrMissingToken
	}
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return nil, ErrTokenScheme
	}

	skew := cfg.Skew
	if skew == 0 {
		skew = 30 * time.Second
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256", "HS384", "HS512", "RS256", "RS384", "RS512", "ES256", "EdDSA"}),
		jwt.WithLeeway(skew),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	tok, err := jwt.NewParser(opts...).ParseWithClaims(parts[1], jwt.MapClaims{}, cfg.Keyfunc)
	if err != nil {
		return nil, fmt.Errorf("token parse/verify failed: %w", err)
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// JWTAuth creates a middleware that stops requests without a valid Bearer JWT.
func JWTAuth(cfg JWTConfig) Middleware {
	return func(c *Context) int {
		if len(cfg.PublicPaths) > 0 {
			p, err := c.Request.Path()
			if err != nil {
				return Halt
			}
			for _, pub := range cfg.PublicPaths {
				if strings.HasPrefix(p, pub) {
					return Continue
				}
			}
		}
		_, err := ParseBearer(c, cfg)
		switch {
		case err == nil:
			return Continue
		case errors.Is(err, ErrMissingToken) && cfg.Optional:
			return Continue
		case errors.Is(err, ErrInvalidHandle):
			return Halt
		}
		return unauthorized(c, err.Error())
	}
}

func unauthorized(c *Context, desc string) int {
	c.Response.Header("WWW-Authenticate", "Bearer error=\"invalid_token\", error_description=\""+escapeAuthParam(desc)+"\"")
	return c.Reject(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized", Message: desc})
}

// escapeAuthParam per RFC 6750 to safely include in WWW-Authenticate param
func escapeAuthParam(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "")
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}
