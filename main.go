package main

import (
	"github.com/oaxiom/domain-draw/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
