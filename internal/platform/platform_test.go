// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package platform

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		os      OS
		env     []string
		want    Identity
		missing string // name of the missing variable, if any
	}{
		{
			name: "both",
			os:   Linux,
			env:  []string{"TARGET=aarch64-linux-android", "HOST=x86_64-unknown-linux-gnu"},
			want: Identity{Target: "aarch64-linux-android", Host: "x86_64-unknown-linux-gnu"},
		},
		{
			name: "windows keys are case-insensitive",
			os:   Windows,
			env:  []string{"target=x86_64-pc-windows-msvc", "Host=x86_64-pc-windows-msvc"},
			want: Identity{Target: "x86_64-pc-windows-msvc", Host: "x86_64-pc-windows-msvc"},
		},
		{
			name: "empty counts as set",
			os:   Linux,
			env:  []string{"TARGET=", "HOST="},
			want: Identity{},
		},
		{
			name:    "no target",
			os:      Linux,
			env:     []string{"HOST=x86_64-unknown-linux-gnu"},
			missing: "TARGET",
		},
		{
			name:    "no host",
			os:      Darwin,
			env:     []string{"TARGET=x86_64-apple-darwin"},
			missing: "HOST",
		},
		{
			name:    "lowercase on linux",
			os:      Linux,
			env:     []string{"target=x", "HOST=x"},
			missing: "TARGET",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromEnv(tt.os, tt.env)
			if tt.missing != "" {
				var merr *MissingEnvError
				if !errors.As(err, &merr) || merr.Var != tt.missing {
					t.Fatalf("FromEnv error = %v; want missing %s", err, tt.missing)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("FromEnv = %+v; want %+v", got, tt.want)
			}
		})
	}
}

func TestParseOS(t *testing.T) {
	tests := []struct {
		goos    string
		want    OS
		tag     string
		listSep string
	}{
		{"darwin", Darwin, "darwin", ":"},
		{"linux", Linux, "linux", ":"},
		{"windows", Windows, "windows", ";"},
		{"openbsd", Other, "", ":"},
	}
	for _, tt := range tests {
		o := ParseOS(tt.goos)
		if o != tt.want {
			t.Errorf("ParseOS(%q) = %v; want %v", tt.goos, o, tt.want)
		}
		tag, err := o.HostTag()
		if tt.tag == "" {
			if err == nil {
				t.Errorf("%v.HostTag() = %q; want error", o, tag)
			}
		} else if tag != tt.tag || err != nil {
			t.Errorf("%v.HostTag() = %q, %v; want %q", o, tag, err, tt.tag)
		}
		if got := o.ListSeparator(); got != tt.listSep {
			t.Errorf("%v.ListSeparator() = %q; want %q", o, got, tt.listSep)
		}
	}
}

func TestParseTriple(t *testing.T) {
	tests := []struct {
		in   string
		want Triple
	}{
		{"x86_64-pc-windows-msvc", Triple{Arch: "x86_64", Vendor: "pc", OS: "windows", Env: "msvc"}},
		{"i686-pc-windows-msvc", Triple{Arch: "i686", Vendor: "pc", OS: "windows", Env: "msvc"}},
		{"x86_64-unknown-linux-gnu", Triple{Arch: "x86_64", Vendor: "unknown", OS: "linux", Env: "gnu"}},
		{"aarch64-linux-android", Triple{Arch: "aarch64", OS: "linux", Env: "android"}},
		{"arm-linux-androideabi", Triple{Arch: "arm", OS: "linux", Env: "androideabi"}},
		{"x86_64-apple-darwin", Triple{Arch: "x86_64", Vendor: "apple", OS: "darwin"}},
		{"x86_64-unknown-openbsd", Triple{Arch: "x86_64", Vendor: "unknown", OS: "openbsd"}},
		{"arm-unknown-linux-gnueabihf", Triple{Arch: "arm", Vendor: "unknown", OS: "linux", Env: "gnueabihf"}},
	}
	for _, tt := range tests {
		got := ParseTriple(tt.in)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ParseTriple(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
		if s := got.String(); s != tt.in {
			t.Errorf("ParseTriple(%q).String() = %q", tt.in, s)
		}
	}
}
