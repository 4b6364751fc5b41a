package main

import "github.com/inovacc/focset/cmd"

func main() {
	cmd.Execute()
}
