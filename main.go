// Package main is the entry point for the hocwrap CLI.
package main

import "hocwrap.dev/pkg/hocwrap/cmd"

func main() {
	cmd.Execute()
}
