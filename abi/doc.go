// Package abi defines the boundary between the dia host façade and a native
// HTTP engine.
//
// Every engine object (application, request, response, controller,
// middleware chain) is reached through an opaque Handle. Calls return a
// binary Status; strings cross as NUL-terminated CString buffers; host code is
// reached through Callback values that the engine invokes per request.
//
// The engine cannot tell whether the caller still owns a handle, so liveness
// checks are the host's job. See package dia for the owning wrappers.
package abi
