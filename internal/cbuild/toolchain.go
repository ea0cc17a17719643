// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cbuild

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/rustcrypto-helpers/nativebuild/internal/envutil"
	"github.com/rustcrypto-helpers/nativebuild/internal/plan"
	"github.com/rustcrypto-helpers/nativebuild/internal/platform"
)

// crossPrefixes maps a target triple to the binary prefix of its GCC
// cross toolchain, e.g. "aarch64-linux-android" → aarch64-linux-android-gcc.
var crossPrefixes = map[string]string{
	"aarch64-linux-android":         "aarch64-linux-android",
	"arm-linux-androideabi":         "arm-linux-androideabi",
	"armv7-linux-androideabi":       "arm-linux-androideabi",
	"i686-linux-android":            "i686-linux-android",
	"x86_64-linux-android":          "x86_64-linux-android",
	"aarch64-unknown-linux-gnu":     "aarch64-linux-gnu",
	"arm-unknown-linux-gnueabi":     "arm-linux-gnueabi",
	"arm-unknown-linux-gnueabihf":   "arm-linux-gnueabihf",
	"armv7-unknown-linux-gnueabihf": "arm-linux-gnueabihf",
	"i686-pc-windows-gnu":           "i686-w64-mingw32",
	"x86_64-pc-windows-gnu":         "x86_64-w64-mingw32",
	"mips-unknown-linux-gnu":        "mips-linux-gnu",
	"powerpc-unknown-linux-gnu":     "powerpc-linux-gnu",
	"powerpc64le-unknown-linux-gnu": "powerpc64le-linux-gnu",
	"s390x-unknown-linux-gnu":       "s390x-linux-gnu",
}

// toolEnvKeys returns the environment variables consulted, in order,
// for the tool variable name (e.g. "CC") when building for id.
func toolEnvKeys(name string, id platform.Identity) []string {
	kind := "HOST"
	if id.IsCross() {
		kind = "TARGET"
	}
	return []string{
		name + "_" + id.Target,
		name + "_" + strings.ReplaceAll(id.Target, "-", "_"),
		kind + "_" + name,
		name,
	}
}

// envWords looks up the first present key and splits its value into
// words using shell quoting rules.
func envWords(goos string, env []string, keys []string) ([]string, bool, error) {
	v, ok := envutil.First(goos, env, keys...)
	if !ok || strings.TrimSpace(v) == "" {
		return nil, false, nil
	}
	words, err := shellquote.Split(v)
	if err != nil {
		return nil, false, fmt.Errorf("parsing %s: %w", keys[len(keys)-1], err)
	}
	return words, len(words) > 0, nil
}

// compilerFor returns the C compiler command words for c.
// An explicit plan compiler wins, then the CC family of variables,
// then a default derived from the target.
func compilerFor(goos string, c *plan.Config) ([]string, error) {
	if c.Compiler != "" {
		return []string{c.Compiler}, nil
	}
	words, ok, err := envWords(goos, c.Env, toolEnvKeys("CC", c.Identity))
	if err != nil || ok {
		return words, err
	}
	t := platform.ParseTriple(c.Identity.Target)
	switch {
	case t.IsMSVC():
		return []string{"cl.exe"}, nil
	case c.Identity.IsCross() && crossPrefixes[c.Identity.Target] != "":
		return []string{crossPrefixes[c.Identity.Target] + "-gcc"}, nil
	case t.IsWindows():
		return []string{"gcc"}, nil
	}
	return []string{"cc"}, nil
}

// archiverFor returns the archiver command words for c.
func archiverFor(goos string, c *plan.Config) ([]string, error) {
	words, ok, err := envWords(goos, c.Env, toolEnvKeys("AR", c.Identity))
	if err != nil || ok {
		return words, err
	}
	t := platform.ParseTriple(c.Identity.Target)
	switch {
	case t.IsMSVC():
		return []string{"lib.exe"}, nil
	case c.Identity.IsCross() && crossPrefixes[c.Identity.Target] != "":
		return []string{crossPrefixes[c.Identity.Target] + "-ar"}, nil
	}
	return []string{"ar"}, nil
}

// assemblerFor returns the MASM assembler for an MSVC target.
func assemblerFor(t platform.Triple) []string {
	if t.Is64BitX86() {
		return []string{"ml64.exe"}
	}
	return []string{"ml.exe", "/safeseh"}
}

// isMSVCStyle reports whether the compiler takes cl.exe style flags.
func isMSVCStyle(compiler string) bool {
	base := strings.ToLower(compiler)
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	return base == "cl" || base == "cl.exe" || base == "clang-cl" || base == "clang-cl.exe"
}
