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
	"sync"
	"sync/atomic"

	"github.com/jrgalyan/dia/abi"
)

// Buffers larger than this are dropped instead of pooled.
const maxPooledBuffer = 64 << 10

var (
	bufPool = sync.Pool{New: func() any {
		b := make([]byte, 0, 256)
		return &b
	}}

	// outstanding counts buffers handed out and not yet returned.
	outstanding atomic.Int64
)

func acquire() *[]byte {
	outstanding.Add(1)
	return bufPool.Get().(*[]byte)
}

func release(bp *[]byte) {
	b := *bp
	clear(b[:cap(b)])
	*bp = b[:0]
	outstanding.Add(-1)
	if cap(b) > maxPooledBuffer {
		return
	}
	bufPool.Put(bp)
}

// marshal copies s into bp as a NUL-terminated string.
func marshal(bp *[]byte, s string) (abi.CString, error) {
	c, err := abi.AppendCString((*bp)[:0], s)
	if err != nil {
		return nil, err
	}
	*bp = c
	return c, nil
}

// withCString marshals s for exactly one boundary call. The buffer is zeroed
// and returned to the pool when withCString returns, on every path.
func withCString(s string, call func(abi.CString) abi.Status) (abi.Status, error) {
	bp := acquire()
	defer release(bp)
	c, err := marshal(bp, s)
	if err != nil {
		return abi.Fail, err
	}
	return call(c), nil
}

// withCString2 is withCString for calls taking two strings. Both are checked
// before the call is made.
func withCString2(a, b string, call func(x, y abi.CString) abi.Status) (abi.Status, error) {
	ap := acquire()
	defer release(ap)
	bp := acquire()
	defer release(bp)
	x, err := marshal(ap, a)
	if err != nil {
		return abi.Fail, err
	}
	y, err := marshal(bp, b)
	if err != nil {
		return abi.Fail, err
	}
	return call(x, y), nil
}

// borrowed copies a borrowed engine string before the next call can reuse it.
func borrowed(c abi.CString) (string, bool) {
	if c.IsNull() {
		return "", false
	}
	return c.String(), true
}
