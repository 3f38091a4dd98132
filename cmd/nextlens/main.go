package main

import "github.com/alexberriman/nextlens/cmd/nextlens/commands"

func main() {
	commands.Execute()
}
