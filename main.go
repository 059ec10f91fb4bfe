package main

import "github.com/vietdv277/aash/cmd"

func main() {
	cmd.Execute()
}
