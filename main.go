package main

import (
	"bl3-savior/cli"
)

func main() {
	cli.Start()
}
