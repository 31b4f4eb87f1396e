package main

import "aniflow/cmd/aniflow/command"

func main() {
	command.Execute()
}
