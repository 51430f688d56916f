package main

import (
	"devkit/cmd"
)

// devkit provisions a developer machine from a static JSON catalog:
// it installs the chosen IDE, its extensions, a set of web pages
// wrapped as desktop apps via the pake CLI, and the IDE settings file.
func main() {
	cmd.Execute()
}
