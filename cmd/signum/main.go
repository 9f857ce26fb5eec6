package main

import "github.com/funvibe/signum/pkg/cli"

func main() {
	cli.Run()
}
