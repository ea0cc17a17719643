// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package platform describes the machines involved in a native helper
// build: the target the archive is built for, the host the compiler
// runs on, and the operating system of the build machine itself.
package platform

import (
	"fmt"

	"github.com/rustcrypto-helpers/nativebuild/internal/envutil"
)

// Identity is the pair of platform triples a build is configured for.
// It is read once from the environment and never modified.
type Identity struct {
	Target string // e.g. "aarch64-linux-android"
	Host   string // e.g. "x86_64-unknown-linux-gnu"
}

// IsCross reports whether the target differs from the host.
func (id Identity) IsCross() bool {
	return id.Target != id.Host
}

func (id Identity) String() string {
	return fmt.Sprintf("target=%s host=%s", id.Target, id.Host)
}

// MissingEnvError reports that a required environment variable is not set.
type MissingEnvError struct {
	Var string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("required environment variable %s is not set", e.Var)
}

// FromEnv reads TARGET and HOST from env, a list of "key=value" strings
// interpreted as on the build machine os.
// A variable that is present but empty counts as set.
func FromEnv(o OS, env []string) (Identity, error) {
	target, ok := envutil.Lookup(o.GOOS(), env, "TARGET")
	if !ok {
		return Identity{}, &MissingEnvError{Var: "TARGET"}
	}
	host, ok := envutil.Lookup(o.GOOS(), env, "HOST")
	if !ok {
		return Identity{}, &MissingEnvError{Var: "HOST"}
	}
	return Identity{Target: target, Host: host}, nil
}
