// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package envutil

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDedup(t *testing.T) {
	tests := []struct {
		in   []string
		want map[string][]string // keyed by GOOS
	}{
		{
			in: []string{"k1=v1", "k2=v2", "K1=v3"},
			want: map[string][]string{
				"windows": {"k2=v2", "K1=v3"},
				"linux":   {"k1=v1", "k2=v2", "K1=v3"},
			},
		},
		{
			in: []string{"k1=v1", "K1=V2", "k1=v3"},
			want: map[string][]string{
				"windows": {"k1=v3"},
				"linux":   {"K1=V2", "k1=v3"},
			},
		},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			for goos, want := range tt.want {
				t.Run(goos, func(t *testing.T) {
					got := Dedup(goos, tt.in)
					if diff := cmp.Diff(want, got); diff != "" {
						t.Errorf("Dedup(%q, %q) mismatch (-want +got):\n%s", goos, tt.in, diff)
					}
				})
			}
		})
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		env  []string
		want map[string]map[string]string // GOOS → key → value
	}{
		{
			env: []string{"k1=v1", "k2=v2", "K1=v3"},
			want: map[string]map[string]string{
				"windows": {"k1": "v3", "k2": "v2", "K1": "v3", "K2": "v2"},
				"linux":   {"k1": "v1", "k2": "v2", "K1": "v3", "K2": ""},
			},
		},
		{
			env: []string{"k1=v1", "K1=V2", "k1=v3"},
			want: map[string]map[string]string{
				"windows": {"k1": "v3", "K1": "v3"},
				"linux":   {"k1": "v3", "K1": "V2"},
			},
		},
	}

	for i, tt := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			for goos, m := range tt.want {
				t.Run(goos, func(t *testing.T) {
					for k, want := range m {
						got := Get(goos, tt.env, k)
						if got != want {
							t.Errorf("Get(%q, %q, %q) = %q; want %q", goos, tt.env, k, got, want)
						}
					}
				})
			}
		})
	}
}

func TestLookup(t *testing.T) {
	env := []string{"CC=", "PATH=/bin", "Path=C:\\bin"}
	tests := []struct {
		goos, key string
		want      string
		wantOK    bool
	}{
		{"linux", "CC", "", true},
		{"linux", "CXX", "", false},
		{"linux", "PATH", "/bin", true},
		{"linux", "Path", "C:\\bin", true},
		{"windows", "PATH", "C:\\bin", true},
		{"linux", "path", "", false},
	}
	for _, tt := range tests {
		got, ok := Lookup(tt.goos, env, tt.key)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Lookup(%q, %q) = %q, %v; want %q, %v", tt.goos, tt.key, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestFirst(t *testing.T) {
	env := []string{"CC=gcc", "TARGET_CC=clang"}
	got, ok := First("linux", env, "CC_x86_64-unknown-linux-gnu", "TARGET_CC", "CC")
	if !ok || got != "clang" {
		t.Errorf("First = %q, %v; want %q, true", got, ok, "clang")
	}
	if _, ok := First("linux", env, "AR", "TARGET_AR"); ok {
		t.Errorf("First found a value for unset keys")
	}
}

func TestSet(t *testing.T) {
	env := []string{"A=1", "PATH=/bin", "B=2"}
	got := Set("linux", env, "PATH=/bin:/opt/bin")
	want := []string{"A=1", "B=2", "PATH=/bin:/opt/bin"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Set mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"A=1", "PATH=/bin", "B=2"}, env); diff != "" {
		t.Errorf("Set modified its input (-want +got):\n%s", diff)
	}
}

func TestAppendList(t *testing.T) {
	tests := []struct {
		list, sep string
		dirs      []string
		want      string
	}{
		{"", ":", []string{"/a", "/b"}, "/a:/b"},
		{"/usr/bin:/bin", ":", []string{"/a"}, "/usr/bin:/bin:/a"},
		{"/usr/bin::/bin", ":", []string{"/a"}, "/usr/bin::/bin:/a"},
		{`C:\bin;D:\bin`, ";", []string{`E:\x`, `F:\y`}, `C:\bin;D:\bin;E:\x;F:\y`},
		{"/bin", ":", nil, "/bin"},
	}
	for _, tt := range tests {
		if got := AppendList(tt.list, tt.sep, tt.dirs...); got != tt.want {
			t.Errorf("AppendList(%q, %q, %q) = %q; want %q", tt.list, tt.sep, tt.dirs, got, tt.want)
		}
	}
}
