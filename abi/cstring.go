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

import (
	"bytes"
	"errors"
	"strings"
)

// ErrEmbeddedNUL is returned when a string to marshal contains a NUL byte.
var ErrEmbeddedNUL = errors.New("abi: string contains embedded NUL byte")

// CString is a NUL-terminated byte buffer. A nil CString is the absent value.
type CString []byte

// AppendCString appends s and a terminating NUL to dst and returns the
// extended buffer. It fails without touching dst if s contains a NUL byte.
func AppendCString(dst []byte, s string) (CString, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, ErrEmbeddedNUL
	}
	dst = append(dst, s...)
	return append(dst, 0), nil
}

// NewCString allocates a fresh NUL-terminated copy of s.
func NewCString(s string) (CString, error) {
	return AppendCString(make([]byte, 0, len(s)+1), s)
}

// BorrowBytes writes b plus a terminator into scratch, reusing its capacity.
// It is how engines hand out borrowed results: the returned value aliases
// scratch and is overwritten by the next call that reuses it. Embedded NULs
// are kept so binary bodies survive; use Bytes to read them back.
func BorrowBytes(scratch []byte, b []byte) CString {
	scratch = append(scratch[:0], b...)
	return append(scratch, 0)
}

// String decodes c up to its first NUL, copying the bytes.
func (c CString) String() string {
	if i := bytes.IndexByte(c, 0); i >= 0 {
		return string(c[:i])
	}
	return string(c)
}

// Bytes copies everything before the trailing terminator.
func (c CString) Bytes() []byte {
	if len(c) == 0 {
		return nil
	}
	n := len(c)
	if c[n-1] == 0 {
		n--
	}
	out := make([]byte, n)
	copy(out, c[:n])
	return out
}

// IsNull reports whether c is the absent value.
func (c CString) IsNull() bool { return c == nil }

