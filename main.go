package main

import "github.com/pwwang/gentoc/cmd"

func main() {
	cmd.Execute()
}
