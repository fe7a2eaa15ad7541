package main

import "github.com/Johannes-Berggren/ReleaseGoblin/cmd"

func main() {
	cmd.Execute()
}
