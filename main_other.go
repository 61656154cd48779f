//go:build !linux

package main

import "runtime"

// Cocoa and Core Audio expect the process's first thread; keep main on it.
func init() {
	runtime.LockOSThread()
}
