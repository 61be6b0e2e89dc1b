package main

import (
	"os"

	"github.com/chamander/harry/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
