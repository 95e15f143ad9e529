package main

import "github.com/lumastat/lumastat-cli/cmd"

func main() {
	cmd.Execute()
}
