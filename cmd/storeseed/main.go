package main

import (
	"storeseed/internal/cmd"
)

func main() {
	cmd.Execute()
}
