package main

import "langchecker/internal/cli"

func main() {
	cli.Execute()
}
