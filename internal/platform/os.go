// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package platform

import "fmt"

// OS is the operating system of the machine running the build.
// It is resolved once at startup from runtime.GOOS so that callers can
// exercise every value without rebuilding.
type OS int

const (
	Other OS = iota
	Darwin
	Linux
	Windows
)

// ParseOS maps a GOOS value to an OS. Unknown values map to Other.
func ParseOS(goos string) OS {
	switch goos {
	case "darwin":
		return Darwin
	case "linux":
		return Linux
	case "windows":
		return Windows
	}
	return Other
}

// GOOS returns the GOOS spelling of o, or "" for Other.
func (o OS) GOOS() string {
	switch o {
	case Darwin:
		return "darwin"
	case Linux:
		return "linux"
	case Windows:
		return "windows"
	}
	return ""
}

func (o OS) String() string {
	if o == Other {
		return "other"
	}
	return o.GOOS()
}

// ListSeparator returns the separator used in PATH-style lists.
func (o OS) ListSeparator() string {
	if o == Windows {
		return ";"
	}
	return ":"
}

// PathSeparator returns the separator between path elements.
func (o OS) PathSeparator() string {
	if o == Windows {
		return `\`
	}
	return "/"
}

// UnsupportedOSError reports that prebuilt NDK toolchains are not
// published for the build machine's operating system.
type UnsupportedOSError struct {
	OS OS
}

func (e *UnsupportedOSError) Error() string {
	return fmt.Sprintf("no prebuilt NDK toolchains for build machine OS %q", e.OS)
}

// HostTag returns the NDK prebuilt directory prefix for o:
// "darwin", "linux" or "windows".
func (o OS) HostTag() (string, error) {
	if o == Other {
		return "", &UnsupportedOSError{OS: o}
	}
	return o.GOOS(), nil
}
