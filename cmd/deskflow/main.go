package main

import "deskflow/internal/cli"

func main() {
	cli.Execute()
}
