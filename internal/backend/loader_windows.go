//go:build windows && (amd64 || arm64)

package backend

import (
	"github.com/ebitengine/purego"
	"golang.org/x/sys/windows"
)

// cLong is C long on LLP64 Windows.
type cLong = int32

var defaultCandidates = []string{"libsamplerate-0.dll", "samplerate.dll"}

func openLibrary(name string) (uintptr, error) {
	h, err := windows.LoadLibrary(name)
	return uintptr(h), err
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), name)
}

func closeLibrary(handle uintptr) error {
	return windows.FreeLibrary(windows.Handle(handle))
}

func bindSimple(addr uintptr) srcSimpleFunc {
	var fn srcSimpleFunc
	purego.RegisterFunc(&fn, addr)
	return fn
}
