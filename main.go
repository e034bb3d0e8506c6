package main

import "github.com/gaurav-prasanna/cargotab/cmd"

func main() {
	cmd.Execute()
}
