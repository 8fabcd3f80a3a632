package main

import "github.com/termtools/askmd/cmd"

func main() {
	cmd.Execute()
}
