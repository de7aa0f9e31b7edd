package main

import "github.com/dimaq12/minesweaper/cmd"

func main() {
	cmd.Execute()
}
