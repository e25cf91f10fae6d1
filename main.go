package main

import "github.com/diogodcarvalho/osiris-utils/cmd"

func main() {
	cmd.Execute()
}
