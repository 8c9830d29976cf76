package main

import (
	"post-catering/cmd"

	_ "go.uber.org/automaxprocs"
)

func main() {
	cmd.Start()
}
