package main

import "gitamctl/cmd"

func main() {
	cmd.Execute()
}
