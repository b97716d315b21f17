package main

import "github.com/all-dot-files/timer/internal/cli"

func main() {
	cli.Execute()
}
