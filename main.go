package main

import "github.com/papapumpkin/tempo/cmd"

func main() {
	cmd.Execute()
}
