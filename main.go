package main

import "bom-checker/cmd"

func main() {
	cmd.Execute()
}
