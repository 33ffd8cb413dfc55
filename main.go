package main

import "gitlab.com/begraf/trailplay/cmd"

func main() {
	cmd.Execute()
}
