package main

import (
	"github.com/swipe-io/aconfig/cmd"
)

func main() {
	cmd.Execute()
}
