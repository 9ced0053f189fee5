package main

import "rekordcrate/cmd"

func main() {
	cmd.Execute()
}
