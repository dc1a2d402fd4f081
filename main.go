package main

import "github.com/scriptdiff/scriptdiff/cmd"

func main() {
	cmd.Execute()
}
