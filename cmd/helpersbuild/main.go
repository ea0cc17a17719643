// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Helpersbuild builds the native utility and AES-NI helper routines of
the crypto library into a single static archive. It is run by the
library's build as a pre-compilation step and takes no arguments;
everything it needs comes from the environment:

	TARGET, HOST   platform triples of the build (required)
	NDK_HOME       Android NDK root (required for Android targets)
	CC             explicit C compiler; disables compiler selection
	OUT_DIR        directory for objects and the archive (required)
	OPT_LEVEL      optimization level, default 0
	DEBUG          "true" to emit debug info
	CFLAGS         extra compiler flags
	AR             archiver
	NUM_JOBS       number of compiler processes to run at once

On success it prints the link directives for the archive on standard
output. Any error is printed on standard error and the exit status
is 1; no archive is left behind.
*/
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/rustcrypto-helpers/nativebuild/internal/cbuild"
	"github.com/rustcrypto-helpers/nativebuild/internal/plan"
	"github.com/rustcrypto-helpers/nativebuild/internal/platform"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("helpersbuild: ")

	buildOS := platform.ParseOS(runtime.GOOS)
	b := &cbuild.Builder{OS: buildOS}
	if err := run(context.Background(), os.Stdout, b, os.Environ()); err != nil {
		log.Fatal(err)
	}
}

// run plans and builds the helper archive for env and writes the
// link directives to w.
func run(ctx context.Context, w io.Writer, b *cbuild.Builder, env []string) error {
	c, err := plan.Plan(b.OS, env)
	if err != nil {
		return err
	}
	kind := "C"
	if c.IsAssembly() {
		kind = "assembly"
	}
	log.Printf("%v: building %s helpers %v (plan %016x)", c.Identity, kind, c.Sources, c.Fingerprint())
	if c.Compiler != "" {
		log.Printf("using compiler %s", c.Compiler)
	}
	logCPUFeatures()

	r, err := b.Build(ctx, c)
	if err != nil {
		return err
	}
	for _, d := range r.Directives() {
		if _, err := fmt.Fprintln(w, d); err != nil {
			return err
		}
	}
	return nil
}
