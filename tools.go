//go:build tools

// Package tools tracks Go-based tools invoked through go generate, such as
// mockgen, as explicit module dependencies.
package tools

import (
	_ "go.uber.org/mock/mockgen"
)
