package main

import "github.com/aweris/filestore/cmd/filestore/cmd"

func main() {
	cmd.Execute()
}
