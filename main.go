package main

import "github.com/plumharbor/daylens/cmd"

func main() {
	cmd.Execute()
}
