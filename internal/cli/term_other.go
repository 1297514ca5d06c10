//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd)

package cli

func isTerminal(uintptr) bool {
	return false
}
