package main

import "github.com/masmgr/lockline/cmd"

func main() {
	cmd.Run()
}
