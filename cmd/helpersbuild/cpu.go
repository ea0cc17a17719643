// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log"
	"runtime"

	"golang.org/x/sys/cpu"
)

// logCPUFeatures notes whether the build machine itself could run the
// AES-NI helpers. It has no effect on what is built: the archive is for
// the target, which may be a different machine.
func logCPUFeatures() {
	switch runtime.GOARCH {
	case "amd64", "386":
		log.Printf("build machine AES-NI: %v, PCLMULQDQ: %v", cpu.X86.HasAES, cpu.X86.HasPCLMULQDQ)
	case "arm64":
		log.Printf("build machine ARMv8 AES: %v, PMULL: %v", cpu.ARM64.HasAES, cpu.ARM64.HasPMULL)
	}
}
