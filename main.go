package main

import "github.com/mabhi256/dquest/cmd"

func main() {
	cmd.Execute()
}
