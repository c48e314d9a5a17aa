package main

import "rain-scent/internal/cli"

func main() {
	cli.Execute()
}
