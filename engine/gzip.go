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
	"bytes"
	"compress/gzip"
	"net/http"
	"strings"
)

// Content types that are already compressed and should not be gzip-compressed.
var skippedContentTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
	"image/avif",
	"video/",
	"audio/",
	"application/zip",
	"application/gzip",
	"application/x-gzip",
	"application/x-compressed",
	"application/x-bzip2",
	"application/x-xz",
	"application/zstd",
	"application/wasm",
}

func shouldSkipContentType(ct string) bool {
	ct = strings.ToLower(ct)
	for _, skip := range skippedContentTypes {
		if strings.HasPrefix(ct, skip) {
			return true
		}
	}
	return false
}

func acceptsGzip(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept-Encoding"), "gzip")
}

// compressBody gzips body when it is at least cfg.MinLength bytes and of a
// compressible type, setting Content-Encoding on h. Otherwise, or if
// compression fails, body is returned unchanged.
func compressBody(h http.Header, body []byte, cfg GzipConfig) []byte {
	h.Add("Vary", "Accept-Encoding")
	if len(body) < cfg.MinLength || h.Get("Content-Encoding") != "" || shouldSkipContentType(h.Get("Content-Type")) {
		return body
	}

	var buf bytes.Buffer
	gw, err := gzip.NewWriterLevel(&buf, cfg.Level)
	if err != nil {
		// Fallback to default compression on invalid level
		gw = gzip.NewWriter(&buf)
	}
	if _, err := gw.Write(body); err != nil {
		return body
	}
	if err := gw.Close(); err != nil {
		return body
	}
	h.Set("Content-Encoding", "gzip")
	return buf.Bytes()
}
