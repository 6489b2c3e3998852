package main

import "github.com/inovacc/rostr/cmd"

func main() {
	cmd.Execute()
}
