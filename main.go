package main

import "github.com/t1h0n/gotetris/cmd"

func main() {
	cmd.Execute()
}
