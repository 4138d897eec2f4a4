package main

import "github.com/gaurav-prasanna/clipmark/cmd"

func main() {
	cmd.Execute()
}
