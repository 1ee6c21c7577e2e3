package main

import "github.com/pokedex/backend/internal/interfaces/cli"

func main() {
	cli.Execute()
}
