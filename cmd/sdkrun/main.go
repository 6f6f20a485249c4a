package main

import "sdkrun/internal/cli"

func main() {
	cli.Execute()
}
