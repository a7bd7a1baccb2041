package main

import "github.com/b2network/b2-hdkey/internal/cmd"

func main() {
	cmd.Execute()
}
