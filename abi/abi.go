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

package abi

//go:generate mockgen -source=abi.go -destination=mock/boundary_mock.go -package=mock

// Handle is an opaque reference to engine-side state.
// The zero Handle is the null handle and never refers to a live object.
type Handle uint64

// Null is the null handle returned by a failed constructor.
const Null Handle = 0

// Status is the result of a boundary call. Zero is success; every other value
// is a failure with no further detail.
type Status int32

const (
	OK   Status = 0
	Fail Status = -1
)

// Failed reports whether s signals a failure.
func (s Status) Failed() bool { return s != OK }

// Callback is a host function the engine invokes per request with borrowed
// request and response handles. For middleware entries a nonzero result stops
// the chain. The engine ignores the result of terminal route handlers.
type Callback func(req, resp Handle) Status

// Boundary is the full call set of the native engine.
//
// String arguments are NUL-terminated buffers owned by the caller for the
// duration of the call only. Returned strings are borrowed: they stay valid
// until the next call on the same handle and must be copied by the caller.
// A nil returned CString means "absent".
type Boundary interface {
	Init() Status
	Version() CString

	ApplicationNew() Handle
	ApplicationHost(app Handle, host CString) Status
	ApplicationPort(app Handle, port uint16) Status
	ApplicationGet(app Handle, path CString, cb Callback) Status
	ApplicationPost(app Handle, path CString, cb Callback) Status
	ApplicationPut(app Handle, path CString, cb Callback) Status
	ApplicationDelete(app Handle, path CString, cb Callback) Status
	ApplicationPatch(app Handle, path CString, cb Callback) Status
	ApplicationUse(app Handle, mw Handle) Status
	ApplicationController(app Handle, ctrl Handle) Status
	ApplicationRun(app Handle) Status
	ApplicationFree(app Handle)

	RequestNew() Handle
	RequestMethod(req Handle) CString
	RequestPath(req Handle) CString
	RequestHeader(req Handle, name CString) CString
	RequestQuery(req Handle, key CString) CString
	RequestParam(req Handle, name CString) CString
	RequestBody(req Handle) CString
	RequestFree(req Handle)

	ResponseNew() Handle
	ResponseText(resp Handle, content CString) Status
	ResponseJSON(resp Handle, content CString) Status
	ResponseStatus(resp Handle, code uint16) Status
	ResponseHeader(resp Handle, name, value CString) Status
	ResponseCookie(resp Handle, name, value CString) Status
	ResponseFree(resp Handle)

	ControllerNew() Handle
	ControllerGet(ctrl Handle, path CString, cb Callback) Status
	ControllerPost(ctrl Handle, path CString, cb Callback) Status
	ControllerPut(ctrl Handle, path CString, cb Callback) Status
	ControllerDelete(ctrl Handle, path CString, cb Callback) Status
	ControllerPatch(ctrl Handle, path CString, cb Callback) Status
	ControllerMiddleware(ctrl Handle, cb Callback) Status
	ControllerFree(ctrl Handle)

	MiddlewareNew() Handle
	MiddlewareCORS(mw Handle) Status
	MiddlewareLogger(mw Handle) Status
	MiddlewareCustom(mw Handle, cb Callback) Status
	MiddlewareFree(mw Handle)
}
