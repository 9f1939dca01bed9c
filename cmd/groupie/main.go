package main

import "github.com/handiism/groupie-tracker/internal/cli"

func main() {
	cli.Execute()
}
