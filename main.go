package main

import (
	"github.com/davitra/go-backoffice/app/cmd"
	"github.com/davitra/go-backoffice/app/configs"
)

func main() {
	configs.LoadEnv()
	cmd.RunCli()
}
