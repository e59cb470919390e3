// Package main is the entry point for aizen.
package main

import (
	"github.com/aizenverse/aizen/cmd"
	"github.com/aizenverse/aizen/config"
	"github.com/aizenverse/aizen/internal/cache"
	"github.com/aizenverse/aizen/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go cache.CollectGarbage()

	cmd.Execute()
}
