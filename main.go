package main

import "sutanpu/internal/cli"

func main() {
	cli.Execute()
}
