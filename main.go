package main

import "github.com/devtunnel/devtunnel-go-client/cmd"

func main() {
	cmd.Execute()
}
