//go:build !unix

package transport

func resetChildSignal() {}
