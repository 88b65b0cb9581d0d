// Package main provides the backpack CLI.
package main

import "github.com/mesh-intelligence/backpack/internal/cli"

func main() {
	cli.Execute()
}
