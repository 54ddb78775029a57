package main

import "github.com/camden-git/paranuarabackend/cmd"

func main() {
	cmd.Execute()
}
