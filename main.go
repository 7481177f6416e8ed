package main

import "sprint-board-system.com/sprint-board-system/cmd"

func main() {
	cmd.Execute()
}
