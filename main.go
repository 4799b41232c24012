package main

import "github.com/gaurav-prasanna/storyfetch/cmd"

func main() {
	cmd.Execute()
}
