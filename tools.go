//go:build tools
// +build tools

// Package tools pins the code generators run by `go generate` (mockgen for
// the mocks/ package) so they are tracked in go.mod.
package supachat

import (
	_ "go.uber.org/mock/mockgen"
)
