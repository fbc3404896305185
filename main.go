package main

import (
	"github.com/tilefish/packmule/cmd"
)

func main() {
	cmd.Execute()
}
