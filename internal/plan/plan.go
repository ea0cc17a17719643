// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plan decides which native helper sources to build for a
// target and how the compiler must be configured to build them.
//
// Planning is pure: the process environment is passed in as a list of
// "key=value" strings and any change to it, such as an extended PATH,
// is returned in the Config rather than applied.
package plan

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/rustcrypto-helpers/nativebuild/internal/envutil"
	"github.com/rustcrypto-helpers/nativebuild/internal/ndk"
	"github.com/rustcrypto-helpers/nativebuild/internal/platform"
)

// ArchiveName is the file name of the static archive for every target.
const ArchiveName = "lib_rust_crypto_helpers.a"

// Source sets. A plan uses exactly one of them.
var (
	AsmSources = []string{"src/util_helpers.asm", "src/aesni_helpers.asm"}
	CSources   = []string{"src/util_helpers.c", "src/aesni_helpers.c"}
)

// A Define is a preprocessor definition. An empty Value defines Name
// without a value.
type Define struct {
	Name  string
	Value string
}

func (d Define) String() string {
	if d.Value == "" {
		return d.Name
	}
	return d.Name + "=" + d.Value
}

// Config is a complete compilation configuration for the helper archive.
type Config struct {
	Identity    platform.Identity
	Sources     []string
	Defines     []Define
	Compiler    string // explicit compiler; empty leaves the choice to the builder
	IncludeDirs []string
	Archive     string

	// SearchPath is the executable search path compilers must run with.
	SearchPath string
	// Env is the full environment for compiler processes:
	// the input environment with PATH set to SearchPath.
	Env []string
}

// IsAssembly reports whether c builds the MSVC assembly sources.
func (c *Config) IsAssembly() bool {
	return len(c.Sources) > 0 && strings.HasSuffix(c.Sources[0], ".asm")
}

// String returns a stable, line-oriented description of c.
// Env is not included beyond SearchPath.
func (c *Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "target %s\nhost %s\n", c.Identity.Target, c.Identity.Host)
	for _, s := range c.Sources {
		fmt.Fprintf(&b, "source %s\n", s)
	}
	for _, d := range c.Defines {
		fmt.Fprintf(&b, "define %s\n", d)
	}
	fmt.Fprintf(&b, "compiler %s\n", c.Compiler)
	for _, dir := range c.IncludeDirs {
		fmt.Fprintf(&b, "include %s\n", dir)
	}
	fmt.Fprintf(&b, "archive %s\n", c.Archive)
	fmt.Fprintf(&b, "path %s\n", c.SearchPath)
	return b.String()
}

// Fingerprint returns a hash of c.String. Equal inputs to Plan
// produce equal fingerprints.
func (c *Config) Fingerprint() uint64 {
	return xxhash.Sum64String(c.String())
}

// Plan reads TARGET and HOST from env and returns the configuration
// for building the helpers. buildOS is the operating system of the
// machine running the build; it selects the NDK prebuilt directories
// and how env keys and PATH are interpreted.
//
// A missing TARGET, HOST or, for Android targets, NDK_HOME is reported
// as a *platform.MissingEnvError.
func Plan(buildOS platform.OS, env []string) (*Config, error) {
	id, err := platform.FromEnv(buildOS, env)
	if err != nil {
		return nil, err
	}
	return ForIdentity(id, buildOS, env)
}

// ForIdentity is like Plan but takes an already resolved identity.
func ForIdentity(id platform.Identity, buildOS platform.OS, env []string) (*Config, error) {
	goos := buildOS.GOOS()
	c := &Config{
		Identity:   id,
		Archive:    ArchiveName,
		SearchPath: envutil.Get(goos, env, "PATH"),
	}

	if strings.Contains(id.Target, "msvc") && strings.Contains(id.Host, "windows") {
		c.Sources = append(c.Sources, AsmSources...)
		if strings.Contains(id.Target, "x86_64") {
			c.Defines = append(c.Defines, Define{Name: "X64"})
		}
		c.Env = envutil.Set(goos, env)
		return c, nil
	}

	c.Sources = append(c.Sources, CSources...)
	c.Env = envutil.Set(goos, env)
	if strings.Contains(id.Target, "android") {
		if err := c.addAndroid(buildOS, env); err != nil {
			return nil, err
		}
		c.Env = envutil.Set(goos, env, "PATH="+c.SearchPath)
	}
	if _, ok := envutil.Lookup(goos, env, "CC"); !ok {
		switch {
		case strings.Contains(id.Host, "openbsd"):
			// GCC on OpenBSD has been reported to reject some of the
			// inline assembly in the helpers.
			c.Compiler = "clang"
		case id.Target == id.Host:
			c.Compiler = "cc"
		}
	}
	return c, nil
}

// addAndroid appends the NDK cross compiler directories to the
// search path and adds the NDK sysroot headers.
func (c *Config) addAndroid(buildOS platform.OS, env []string) error {
	root, ok := envutil.Lookup(buildOS.GOOS(), env, "NDK_HOME")
	if !ok {
		return &platform.MissingEnvError{Var: "NDK_HOME"}
	}
	loc, err := ndk.Locate(root, buildOS)
	if err != nil {
		return fmt.Errorf("locating Android toolchains: %w", err)
	}
	c.SearchPath = envutil.AppendList(c.SearchPath, buildOS.ListSeparator(), loc.CompilerDirs...)
	c.IncludeDirs = append(c.IncludeDirs, loc.SysrootInclude)
	return nil
}
