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
	"strconv"

	"github.com/jrgalyan/dia/abi"
)

// Boundary failures. Each names the call site that failed; the engine gives
// no reason, so none is available here either.
var (
	ErrInitFailed          = errors.New("dia: init failed")
	ErrHandleCreateFailed  = errors.New("dia: handle create failed")
	ErrHostSetFailed       = errors.New("dia: host set failed")
	ErrPortSetFailed       = errors.New("dia: port set failed")
	ErrRouteAddFailed      = errors.New("dia: route add failed")
	ErrControllerAddFailed = errors.New("dia: controller add failed")
	ErrMiddlewareAddFailed = errors.New("dia: middleware add failed")
	ErrServerRunFailed     = errors.New("dia: server run failed")
	ErrTextSetFailed       = errors.New("dia: response text set failed")
	ErrJSONSetFailed       = errors.New("dia: response json set failed")
	ErrStatusSetFailed     = errors.New("dia: response status set failed")
	ErrHeaderSetFailed     = errors.New("dia: response header set failed")
	ErrCookieSetFailed     = errors.New("dia: response cookie set failed")
)

// Host-side failures that never reach the engine.
var (
	ErrInvalidHandle      = errors.New("dia: invalid handle")
	ErrEmbeddedNUL        = abi.ErrEmbeddedNUL
	ErrParse              = errors.New("dia: parse failed")
	ErrApplicationRunning = errors.New("dia: application is running")
)

// CallError reports a failed boundary call. It unwraps to the call-specific
// sentinel so callers can match with errors.Is.
type CallError struct {
	Call   string
	Status abi.Status
	Err    error
}

func (e *CallError) Error() string {
	return e.Err.Error() + " (" + e.Call + " returned " + strconv.Itoa(int(e.Status)) + ")"
}

func (e *CallError) Unwrap() error { return e.Err }

func callError(call string, st abi.Status, sentinel error) error {
	return &CallError{Call: call, Status: st, Err: sentinel}
}

// ErrorResponse is a consistent error payload loosely inspired by RFC 9457 (Problem Details for HTTP APIs).
// It does not use the application/problem+json media type or the RFC's field names.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Code    string            `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}
