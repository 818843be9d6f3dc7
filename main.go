package main

import "github.com/kamusis/skillscan/cmd"

func main() {
	cmd.Execute()
}
