//go:build !((darwin || freebsd || linux || windows) && (amd64 || arm64))

package backend

import "errors"

type cLong = int64

var errNoLoader = errors.New("no dynamic loader binding on this platform")

var defaultCandidates []string

func openLibrary(string) (uintptr, error) {
	return 0, errNoLoader
}

func lookupSymbol(uintptr, string) (uintptr, error) {
	return 0, errNoLoader
}

func closeLibrary(uintptr) error {
	return nil
}

func bindSimple(uintptr) srcSimpleFunc {
	return nil
}
