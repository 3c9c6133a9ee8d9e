//go:build tools
// +build tools

package tools

import (
	_ "github.com/myitcv/gobin"
	_ "golang.org/x/tools/cmd/stringer"
)
