// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cbuild compiles a planned set of native helper sources into
// a static archive by running the platform's compiler, assembler and
// archiver.
package cbuild

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
	"golang.org/x/sync/errgroup"

	"github.com/rustcrypto-helpers/nativebuild/internal/envutil"
	"github.com/rustcrypto-helpers/nativebuild/internal/plan"
	"github.com/rustcrypto-helpers/nativebuild/internal/platform"
)

// A Builder runs the tools that turn a plan.Config into an archive.
// The zero value is not usable; OS must be set.
type Builder struct {
	// OS is the operating system of the machine running the build.
	OS platform.OS

	// Dir is the working directory for every tool and the base
	// for relative source paths. Empty means the current directory.
	Dir string

	// LookPath resolves a tool name using the given search path.
	// If nil, tools are looked up on disk.
	LookPath func(file, searchPath string) (string, error)

	// Run runs cmd and returns its combined output.
	// If nil, cmd.CombinedOutput is used.
	Run func(cmd *exec.Cmd) ([]byte, error)

	// Logf logs progress. If nil, log.Printf is used.
	Logf func(format string, args ...any)
}

// Result describes a successfully built archive.
type Result struct {
	OutDir   string
	Archive  string // full path of lib<LinkName>.a
	LinkName string
	Objects  []string
}

// Directives returns the lines that tell the enclosing build where to
// find the archive and what to link.
func (r *Result) Directives() []string {
	return []string{
		"cargo:rustc-link-lib=static=" + r.LinkName,
		"cargo:rustc-link-search=native=" + r.OutDir,
	}
}

// CompilerError reports a failed tool invocation.
// Output is the tool's combined output, unmodified.
type CompilerError struct {
	Args   []string
	Output []byte
	Err    error
}

func (e *CompilerError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %v", shellquote.Join(e.Args...), e.Err)
	if out := bytes.TrimRight(e.Output, "\n"); len(out) > 0 {
		fmt.Fprintf(&b, "\n%s", out)
	}
	return b.String()
}

func (e *CompilerError) Unwrap() error { return e.Err }

// linkName returns the library name encoded in an archive file name
// of the form lib<name>.a.
func linkName(archive string) (string, error) {
	if !strings.HasPrefix(archive, "lib") || !strings.HasSuffix(archive, ".a") || len(archive) <= len("lib.a") {
		return "", fmt.Errorf("archive name %q is not of the form lib<name>.a", archive)
	}
	return strings.TrimSuffix(strings.TrimPrefix(archive, "lib"), ".a"), nil
}

// Build compiles every source in c and archives the objects.
// Tools run with c.Env, so they see c.SearchPath.
// On failure no archive is left behind.
func (b *Builder) Build(ctx context.Context, c *plan.Config) (*Result, error) {
	if len(c.Sources) == 0 {
		return nil, errors.New("cbuild: no sources to build")
	}
	goos := b.OS.GOOS()
	outDir, ok := envutil.Lookup(goos, c.Env, "OUT_DIR")
	if !ok || outDir == "" {
		return nil, &platform.MissingEnvError{Var: "OUT_DIR"}
	}
	name, err := linkName(c.Archive)
	if err != nil {
		return nil, err
	}
	r := &Result{
		OutDir:   outDir,
		Archive:  filepath.Join(outDir, c.Archive),
		LinkName: name,
	}
	if err := os.Remove(r.Archive); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	cmds := make([]*exec.Cmd, len(c.Sources))
	for i, src := range c.Sources {
		obj := filepath.Join(outDir, strings.TrimSuffix(src, filepath.Ext(src))+".o")
		if err := os.MkdirAll(filepath.Dir(obj), 0777); err != nil {
			return nil, err
		}
		cmds[i], err = b.compileCmd(ctx, c, src, obj)
		if err != nil {
			return nil, err
		}
		r.Objects = append(r.Objects, obj)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(numJobs(goos, c.Env))
	for _, cmd := range cmds {
		cmd := cmd
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return b.run(cmd)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := b.archive(ctx, c, r); err != nil {
		os.Remove(r.Archive)
		return nil, err
	}
	return r, nil
}

// numJobs returns the number of tools that may run at once.
func numJobs(goos string, env []string) int {
	n, err := strconv.Atoi(envutil.Get(goos, env, "NUM_JOBS"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func (b *Builder) compileCmd(ctx context.Context, c *plan.Config, src, obj string) (*exec.Cmd, error) {
	goos := b.OS.GOOS()
	t := platform.ParseTriple(c.Identity.Target)

	if strings.EqualFold(filepath.Ext(src), ".asm") {
		words := assemblerFor(t)
		args := append(words[1:], "/nologo", "/c", "/Fo"+obj)
		for _, d := range c.Defines {
			args = append(args, "/D"+d.String())
		}
		for _, dir := range c.IncludeDirs {
			args = append(args, "/I"+dir)
		}
		args = append(args, src)
		return b.command(ctx, c, words[0], args)
	}

	words, err := compilerFor(goos, c)
	if err != nil {
		return nil, err
	}
	cflags, _, err := envWords(goos, c.Env, toolEnvKeys("CFLAGS", c.Identity))
	if err != nil {
		return nil, err
	}
	opt := envutil.Get(goos, c.Env, "OPT_LEVEL")
	if opt == "" {
		opt = "0"
	}
	debug := envutil.Get(goos, c.Env, "DEBUG") == "true"

	args := append([]string(nil), words[1:]...)
	if isMSVCStyle(words[0]) {
		args = append(args, "/nologo", "/c")
		if opt == "0" {
			args = append(args, "/Od")
		} else {
			args = append(args, "/O2")
		}
		if debug {
			args = append(args, "/Z7")
		}
		args = append(args, cflags...)
		for _, dir := range c.IncludeDirs {
			args = append(args, "/I"+dir)
		}
		for _, d := range c.Defines {
			args = append(args, "/D"+d.String())
		}
		args = append(args, "/Fo"+obj, src)
		return b.command(ctx, c, words[0], args)
	}

	args = append(args, "-O"+opt, "-ffunction-sections", "-fdata-sections")
	if !t.IsWindows() {
		args = append(args, "-fPIC")
	}
	if debug {
		args = append(args, "-g")
	}
	switch {
	case t.Is64BitX86():
		args = append(args, "-m64")
	case t.Is32BitX86():
		args = append(args, "-m32")
	}
	args = append(args, cflags...)
	for _, dir := range c.IncludeDirs {
		args = append(args, "-I"+dir)
	}
	for _, d := range c.Defines {
		args = append(args, "-D"+d.String())
	}
	args = append(args, "-c", src, "-o", obj)
	return b.command(ctx, c, words[0], args)
}

func (b *Builder) archive(ctx context.Context, c *plan.Config, r *Result) error {
	words, err := archiverFor(b.OS.GOOS(), c)
	if err != nil {
		return err
	}
	if platform.ParseTriple(c.Identity.Target).IsMSVC() {
		lib := filepath.Join(r.OutDir, r.LinkName+".lib")
		args := append(words[1:], "/nologo", "/OUT:"+lib)
		cmd, err := b.command(ctx, c, words[0], append(args, r.Objects...))
		if err != nil {
			return err
		}
		if err := b.run(cmd); err != nil {
			return err
		}
		return copyFile(r.Archive, lib)
	}
	args := append(words[1:], "crs", r.Archive)
	cmd, err := b.command(ctx, c, words[0], append(args, r.Objects...))
	if err != nil {
		return err
	}
	return b.run(cmd)
}

// command returns a command for tool resolved against c.SearchPath.
// exec.Command would resolve it against this process's PATH instead.
func (b *Builder) command(ctx context.Context, c *plan.Config, tool string, args []string) (*exec.Cmd, error) {
	lookPath := b.LookPath
	if lookPath == nil {
		lookPath = func(file, searchPath string) (string, error) {
			return findExecutable(b.OS, file, searchPath, envutil.Get(b.OS.GOOS(), c.Env, "PATHEXT"))
		}
	}
	path, err := lookPath(tool, c.SearchPath)
	if err != nil {
		return nil, &CompilerError{Args: append([]string{tool}, args...), Err: err}
	}
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Args[0] = tool
	cmd.Env = c.Env
	cmd.Dir = b.Dir
	return cmd, nil
}

func (b *Builder) run(cmd *exec.Cmd) error {
	logf := b.Logf
	if logf == nil {
		logf = log.Printf
	}
	logf("running: %s", shellquote.Join(cmd.Args...))
	run := b.Run
	if run == nil {
		run = (*exec.Cmd).CombinedOutput
	}
	out, err := run(cmd)
	if err != nil {
		return &CompilerError{Args: cmd.Args, Output: out, Err: err}
	}
	return nil
}

func copyFile(dst, src string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
