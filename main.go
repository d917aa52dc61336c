package main

import "dumpscan/cmd"

func main() {
	cmd.Execute()
}
