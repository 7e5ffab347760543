// Package main is the entry point for the docaudit CLI, a
// documentation-quality analyzer and fixture synchronizer for extracted
// declaration trees.
package main

import "docaudit/cmd"

func main() {
	cmd.Execute()
}
