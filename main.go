package main

import "github.com/theirongolddev/ccline/cmd"

func main() {
	cmd.Execute()
}
