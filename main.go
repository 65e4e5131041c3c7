package main

import "pipguide/cmd"

func main() {
	cmd.Execute()
}
