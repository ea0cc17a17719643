// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package envutil provides utilities for working with environment
// variables and executable search path lists without touching the
// process environment.
package envutil

import (
	"slices"
	"strings"
)

// Dedup returns a copy of env with any duplicates removed, in favor of
// later values.
// Items are expected to be on the normal environment "key=value" form.
//
// Keys are interpreted as if on the given GOOS.
// (On Windows, key comparison is case-insensitive.)
func Dedup(goos string, env []string) []string {
	caseInsensitive := (goos == "windows")

	// Construct the output in reverse order, to preserve the
	// last occurrence of each key.
	saw := map[string]bool{}
	out := make([]string, 0, len(env))
	for n := len(env); n > 0; n-- {
		kv := env[n-1]

		k, _ := Split(kv)
		if caseInsensitive {
			k = strings.ToLower(k)
		}
		if saw[k] {
			continue
		}

		saw[k] = true
		out = append(out, kv)
	}
	slices.Reverse(out)
	return out
}

// Lookup returns the value of key in env, interpreted according to goos,
// and whether key is present at all. A key set to the empty string is
// present.
func Lookup(goos string, env []string, key string) (value string, ok bool) {
	for n := len(env); n > 0; n-- {
		if v, ok := Match(goos, env[n-1], key); ok {
			return v, true
		}
	}
	return "", false
}

// Get returns the value of key in env, interpreted according to goos.
func Get(goos string, env []string, key string) string {
	v, _ := Lookup(goos, env, key)
	return v
}

// First returns the value of the first key in keys that is present in env.
func First(goos string, env []string, keys ...string) (value string, ok bool) {
	for _, k := range keys {
		if v, ok := Lookup(goos, env, k); ok {
			return v, true
		}
	}
	return "", false
}

// Match checks whether a "key=value" string matches key and, if so,
// returns the value.
//
// On Windows, the key comparison is case-insensitive.
func Match(goos, kv, key string) (value string, ok bool) {
	if len(kv) <= len(key) || kv[len(key)] != '=' {
		return "", false
	}

	if goos == "windows" {
		if !strings.EqualFold(kv[:len(key)], key) {
			return "", false
		}
	} else {
		if kv[:len(key)] != key {
			return "", false
		}
	}

	return kv[len(key)+1:], true
}

// Split splits a "key=value" string into a key and value.
func Split(kv string) (key, value string) {
	key, value, _ = strings.Cut(kv, "=")
	return key, value
}

// Set returns a copy of env with the given key=value pairs applied,
// removing any earlier entries for the same keys. env is not modified.
func Set(goos string, env []string, kv ...string) []string {
	out := make([]string, 0, len(env)+len(kv))
	out = append(out, env...)
	return Dedup(goos, append(out, kv...))
}

// SplitList splits a PATH-style list on sep.
// Empty elements are kept so that joining the result reproduces list.
// An empty list has no elements.
func SplitList(list, sep string) []string {
	if list == "" {
		return nil
	}
	return strings.Split(list, sep)
}

// AppendList returns list with dirs added after all existing entries.
// Existing entries keep their order, so anything already on the list
// is found before the appended directories.
func AppendList(list, sep string, dirs ...string) string {
	elems := SplitList(list, sep)
	elems = append(elems, dirs...)
	return strings.Join(elems, sep)
}
