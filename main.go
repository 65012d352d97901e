package main

import (
	"github.com/mhmorgan/gitignore-cli/cmd"
	log "github.com/mhmorgan/termlog"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
