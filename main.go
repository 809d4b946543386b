package main

import "github.com/Othello1111/rocketsass/cmd"

func main() {
	cmd.Execute()
}
