//go:build tools

// Package tools pins development tool dependencies so every checkout runs
// the same versions. The mocks under internal/mocks are regenerated with
// `go generate ./internal/mocks`; pinning mockgen through go.mod keeps its
// output format stable across machines.
package tools

import (
	_ "go.uber.org/mock/mockgen"
)
