package main

import "github.com/Gamikaru/thecopysocial/cmd"

func main() {
	cmd.Execute()
}
