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
	"sort"
	"strings"
)

// sanitizer redacts configured path and query parameter values for the
// access log. Methods on a nil *sanitizer return inputs unchanged.
type sanitizer struct {
	mask     string
	paramSet map[string]struct{}
	querySet map[string]struct{}
}

// newSanitizer returns nil if there is nothing to redact.
func newSanitizer(cfg AccessLogConfig) *sanitizer {
	paramSet := toSet(cfg.RedactParams)
	querySet := toSet(cfg.RedactQuery)
	if len(paramSet) == 0 && len(querySet) == 0 {
		return nil
	}
	mask := cfg.Mask
	if mask == "" {
		mask = "***"
	}
	return &sanitizer{mask: mask, paramSet: paramSet, querySet: querySet}
}

// Path masks every path segment equal to the value of a redacted parameter.
func (s *sanitizer) Path(path string, params map[string]string) string {
	if s == nil || len(s.paramSet) == 0 {
		return path
	}

	redactValues := make(map[string]struct{})
	for name := range s.paramSet {
		if v, ok := params[name]; ok && v != "" {
			redactValues[v] = struct{}{}
		}
	}
	if len(redactValues) == 0 {
		return path
	}

	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if _, found := redactValues[seg]; found {
			segments[i] = s.mask
		}
	}
	return strings.Join(segments, "/")
}

// Query masks the values of redacted query parameters. The result lists
// keys in sorted order.
func (s *sanitizer) Query(rawQuery string) string {
	if s == nil || len(s.querySet) == 0 || rawQuery == "" {
		return rawQuery
	}

	q := parseQuery(rawQuery)
	changed := false
	for key := range s.querySet {
		if vals, ok := q[key]; ok {
			for i := range vals {
				vals[i] = s.mask
			}
			changed = true
		}
	}
	if !changed {
		return rawQuery
	}
	return encodeQuery(q)
}

func toSet(items []string) map[string]struct{} {
	s := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item != "" {
			s[item] = struct{}{}
		}
	}
	return s
}

// parseQuery splits a raw query without unescaping, so the logged form stays
// as the client sent it.
func parseQuery(rawQuery string) map[string][]string {
	m := make(map[string][]string)
	for rawQuery != "" {
		var key string
		key, rawQuery, _ = strings.Cut(rawQuery, "&")
		if key == "" {
			continue
		}
		k, v, _ := strings.Cut(key, "=")
		m[k] = append(m[k], v)
	}
	return m
}

func encodeQuery(m map[string][]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf strings.Builder
	for _, k := range keys {
		for _, v := range m[k] {
			if buf.Len() > 0 {
				buf.WriteByte('&')
			}
			buf.WriteString(k)
			buf.WriteByte('=')
			buf.WriteString(v)
		}
	}
	return buf.String()
}
