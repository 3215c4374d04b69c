package main

import "github.com/cryptolink/solkit/cmd"

func main() {
	cmd.Execute()
}
