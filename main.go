package main

import (
	"github.com/yeisme/missionscan/cmd"
)

func main() {
	cmd.Execute()
}
