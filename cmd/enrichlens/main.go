package main

import "github.com/enrichlens/backend/internal/cli"

func main() {
	cli.Execute()
}
