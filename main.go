package main

import "github.com/iksnae/agent-story/cmd"

func main() {
	cmd.Execute()
}
