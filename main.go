package main

import (
	"flag"
	"log"
	"os"

	"github.com/cBlueShell/cIBMWebSphereAppServer/client"
	"github.com/cBlueShell/cIBMWebSphereAppServer/conf"
	"github.com/cBlueShell/cIBMWebSphereAppServer/shared/running"
)

var version = "dev"

func main() {
	flag.Parse()
	running.SetVersion(version)
	if err := running.Init(); err != nil {
		os.Exit(1)
	}

	if err := conf.Load(); err != nil {
		log.Fatal("Error loading config:", err)
		return
	}
	initLog()

	os.Exit(client.Run(flag.Args()))
}
