// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cbuild

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rustcrypto-helpers/nativebuild/internal/envutil"
	"github.com/rustcrypto-helpers/nativebuild/internal/platform"
)

// findExecutable searches searchPath, a list in the format of o's PATH,
// for an executable named file. Names containing a path separator are
// not searched for. On Windows, names without an extension are tried
// with each extension in pathext.
func findExecutable(o platform.OS, file, searchPath, pathext string) (string, error) {
	exts := []string{""}
	if o == platform.Windows && filepath.Ext(file) == "" {
		if pathext == "" {
			pathext = ".com;.exe;.bat;.cmd"
		}
		exts = nil
		for _, e := range strings.Split(strings.ToLower(pathext), ";") {
			if e != "" {
				exts = append(exts, e)
			}
		}
	}
	if strings.ContainsAny(file, `/\`) {
		for _, e := range exts {
			if isExecutable(o, file+e) {
				return file + e, nil
			}
		}
		return "", fmt.Errorf("%s: executable file not found", file)
	}
	for _, dir := range envutil.SplitList(searchPath, o.ListSeparator()) {
		if dir == "" {
			dir = "."
		}
		for _, e := range exts {
			p := filepath.Join(dir, file+e)
			if isExecutable(o, p) {
				return p, nil
			}
		}
	}
	return "", fmt.Errorf("%s: executable file not found in search path", file)
}

func isExecutable(o platform.OS, path string) bool {
	fi, err := os.Stat(path)
	if err != nil || fi.IsDir() {
		return false
	}
	if o == platform.Windows {
		return true
	}
	return fi.Mode()&0111 != 0
}
