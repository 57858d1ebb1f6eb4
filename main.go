package main

import (
	"fmt"
)

// main is the entry point to the vacuum world demonstrations
func main() {
	rootCommand := RootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
	}
}
