// Package main is the entry point for the emsetup CLI.
package main

import "emsetup.dev/pkg/emsetup/cmd"

func main() {
	cmd.Execute()
}
