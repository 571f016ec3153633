package main

import "github.com/bibz/challenge-mini-vouchers/cmd"

func main() {
	cmd.Execute()
}
