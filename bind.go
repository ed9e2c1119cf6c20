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
	"reflect"
	"strconv"
)

// BindQuery binds URL query parameters into a struct using `query` struct tags.
// The destination must be a pointer to a struct. Each tagged field costs one
// boundary call; absent or empty parameters leave the field untouched.
func (r *Request) BindQuery(dst any) error {
	return bindValues(func(key string) (string, error) {
		v, _, err := r.Query(key)
		return v, err
	}, dst, "query")
}

func bindValues(get func(string) (string, error), dst any, tagKey string) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.New("dia: bind destination must be a non-nil pointer to a struct")
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return errors.New("dia: bind destination must be a pointer to a struct")
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		tag := field.Tag.Get(tagKey)
		if tag == "" || tag == "-" {
			continue
		}
		val, err := get(tag)
		if err != nil {
			return err
		}
		if val == "" {
			continue
		}
		if err := setField(rv.Field(i), val); err != nil {
			return fmt.Errorf("%w: field %s: %w", ErrParse, field.Name, err)
		}
	}
	return nil
}

func setField(fv reflect.Value, val string) error {
	if !fv.CanSet() {
		return nil
	}
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(val)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return err
		}
		fv.SetInt(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return err
		}
		fv.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(val)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	}
	return nil
}
