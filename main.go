package main

import "genie-graph/cmd"

func main() {
	cmd.Execute()
}
