package main

import "github.com/bgraf/trailmap/cmd"

func main() {
	cmd.Execute()
}
