//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package backend

import (
	"runtime"

	"github.com/ebitengine/purego"
)

// cLong is C long on LP64 platforms.
type cLong = int64

var defaultCandidates = func() []string {
	if runtime.GOOS == "darwin" {
		return []string{"libsamplerate.0.dylib", "libsamplerate.dylib"}
	}
	return []string{"libsamplerate.so.0", "libsamplerate.so"}
}()

func openLibrary(name string) (uintptr, error) {
	return purego.Dlopen(name, purego.RTLD_LAZY|purego.RTLD_LOCAL)
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func closeLibrary(handle uintptr) error {
	return purego.Dlclose(handle)
}

func bindSimple(addr uintptr) srcSimpleFunc {
	var fn srcSimpleFunc
	purego.RegisterFunc(&fn, addr)
	return fn
}
