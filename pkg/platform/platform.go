// Package platform reports the identity of the executing Go toolchain.
//
// Generated output embeds the producing toolchain in its manifest so a
// regeneration on a different distribution is visible in review diffs.
package platform

import (
	"fmt"
	"runtime"
)

// standardCompiler is the marker for the stock Go distribution. Alternate
// toolchains (gccgo, tinygo) report their own names.
const standardCompiler = "gc"

// Identity describes the executing toolchain and target.
type Identity struct {
	// Compiler is the toolchain name reported by the runtime
	Compiler string

	// Version is the Go release the binary was built with
	Version string

	// OS is the target operating system
	OS string

	// Arch is the target architecture
	Arch string
}

// Current returns the identity of the running toolchain.
func Current() Identity {
	return Identity{
		Compiler: runtime.Compiler,
		Version:  runtime.Version(),
		OS:       runtime.GOOS,
		Arch:     runtime.GOARCH,
	}
}

// String renders the identity in a single manifest-friendly line.
func (i Identity) String() string {
	return fmt.Sprintf("%s %s (%s/%s)", i.Compiler, i.Version, i.OS, i.Arch)
}

// IsStandardToolchain reports whether the binary was produced by the stock
// Go distribution. Absence of the marker means false; there are no error
// paths.
func IsStandardToolchain() bool {
	return runtime.Compiler == standardCompiler
}
