package main

import "numbuy/cmd"

func main() {
	cmd.Execute()
}
