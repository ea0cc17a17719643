// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package platform

import "strings"

// Triple is a parsed platform triple such as "x86_64-pc-windows-msvc".
type Triple struct {
	Arch   string
	Vendor string // empty for vendorless triples like "aarch64-linux-android"
	OS     string
	Env    string // e.g. "gnu", "msvc", "android", "androideabi"
}

// ParseTriple splits s into its components.
// Three-part triples whose second field is a known OS
// ("linux", "windows", "darwin") are treated as arch-os-env.
func ParseTriple(s string) Triple {
	f := strings.Split(s, "-")
	var t Triple
	switch len(f) {
	case 1:
		t.Arch = f[0]
	case 2:
		t.Arch, t.OS = f[0], f[1]
	case 3:
		if isOSName(f[1]) {
			t.Arch, t.OS, t.Env = f[0], f[1], f[2]
		} else {
			t.Arch, t.Vendor, t.OS = f[0], f[1], f[2]
		}
	default:
		t.Arch, t.Vendor, t.OS = f[0], f[1], f[2]
		t.Env = strings.Join(f[3:], "-")
	}
	return t
}

func isOSName(s string) bool {
	switch s {
	case "linux", "windows", "darwin":
		return true
	}
	return false
}

func (t Triple) String() string {
	parts := []string{t.Arch}
	for _, p := range []string{t.Vendor, t.OS, t.Env} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "-")
}

// IsMSVC reports whether t targets the MSVC toolchain.
func (t Triple) IsMSVC() bool { return t.Env == "msvc" }

// IsWindows reports whether t targets Windows.
func (t Triple) IsWindows() bool { return t.OS == "windows" }

// Is64BitX86 reports whether t is an x86-64 target.
func (t Triple) Is64BitX86() bool { return t.Arch == "x86_64" }

// Is32BitX86 reports whether t is a 32-bit x86 target.
func (t Triple) Is32BitX86() bool {
	switch t.Arch {
	case "i386", "i586", "i686":
		return true
	}
	return false
}
