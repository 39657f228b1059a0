package main

import "martianoff/unpack/cmd/unpack/commands"

func main() {
	commands.Execute()
}
