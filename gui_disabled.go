//go:build !gui

package main

import "errors"

var errNoGUI = errors.New("built without GUI support (rebuild with -tags gui)")

func runGUI(*session) (int, error) {
	return 0, errNoGUI
}
