package main

import (
	cmd "github.com/finnews/finner/cmd/finner"
	"github.com/finnews/finner/internal"
)

var log = internal.GetLogger()

func main() {
	log.Info("Starting finner")
	cmd.Execute()
}
