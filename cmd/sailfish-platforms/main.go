package main

import "sailfish-platforms/internal/cli"

func main() {
	cli.Execute()
}
