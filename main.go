package main

import (
	"os"

	"github.com/bundlelint/bundlelint/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
