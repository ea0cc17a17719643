// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ndk locates the GCC cross toolchains and sysroot headers
// inside an Android NDK installation.
package ndk

import (
	"strings"

	"github.com/rustcrypto-helpers/nativebuild/internal/platform"
)

// ABI is an Android application binary interface with its own
// cross toolchain.
type ABI int

const (
	Aarch64 ABI = iota // 64-bit ARM
	Arm                // 32-bit ARM, EABI
	X86                // 32-bit x86
)

// ABIs lists the supported ABIs in search path order.
var ABIs = []ABI{Aarch64, Arm, X86}

// ToolchainName returns the name of the NDK toolchain directory for a,
// without its GCC version suffix.
func (a ABI) ToolchainName() string {
	switch a {
	case Aarch64:
		return "aarch64-linux-android"
	case Arm:
		return "arm-linux-androideabi"
	case X86:
		return "x86"
	}
	panic("ndk: unknown ABI")
}

func (a ABI) String() string {
	switch a {
	case Aarch64:
		return "aarch64"
	case Arm:
		return "arm"
	case X86:
		return "x86"
	}
	return "unknown"
}

const gccVersion = "4.9"

// SysrootInclude is the header directory, relative to the NDK root,
// used for every ABI. It is always the API level 21 arm64 sysroot,
// even for the 32-bit ABIs.
const SysrootInclude = "platforms/android-21/arch-arm64/usr/include"

// ToolchainBin returns the path, relative to the NDK root, of the
// directory holding the compiler binaries for a on the build machine
// identified by hostTag ("darwin", "linux" or "windows").
func (a ABI) ToolchainBin(hostTag string) string {
	return "toolchains/" + a.ToolchainName() + "-" + gccVersion + "/prebuilt/" + hostTag + "-x86_64/bin"
}

// Location is the set of NDK directories needed to cross-compile
// for Android.
type Location struct {
	CompilerDirs   []string // one per entry in ABIs, same order
	SysrootInclude string
}

// Locate computes the toolchain locations under root for a build
// running on buildOS. It only computes paths; nothing is checked on disk.
func Locate(root string, buildOS platform.OS) (*Location, error) {
	tag, err := buildOS.HostTag()
	if err != nil {
		return nil, err
	}
	sep := buildOS.PathSeparator()
	loc := &Location{
		SysrootInclude: join(root, SysrootInclude, sep),
	}
	for _, a := range ABIs {
		loc.CompilerDirs = append(loc.CompilerDirs, join(root, a.ToolchainBin(tag), sep))
	}
	return loc, nil
}

// join appends rel to root, inserting sep unless root already ends
// with a separator. rel keeps its forward slashes.
func join(root, rel, sep string) string {
	if root == "" {
		return rel
	}
	if strings.HasSuffix(root, "/") || strings.HasSuffix(root, sep) {
		return root + rel
	}
	return root + sep + rel
}
