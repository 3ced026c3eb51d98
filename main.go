package main

import "github.com/Digital-Shane/imdbkit/internal/cmd"

func main() {
	cmd.Execute()
}
