package main

import "errors"

// ErrUnknownPattern indicates the -pattern flag named a synthesis
// pattern that patterns.go does not implement.
var ErrUnknownPattern = errors.New("felzseg: unknown pattern")
