package main

import "github.com/dotcommander/qforge/cmd"

func main() {
	cmd.Execute()
}
