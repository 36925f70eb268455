package main

import (
	"github.com/isaacphi/tbprompt/internal/ui/cli"
)

func main() {
	cli.Execute()
}
