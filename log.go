package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/cBlueShell/cIBMWebSphereAppServer/conf"

	"gopkg.in/natefinch/lumberjack.v2"
)

func initLog() {
	c := conf.Get()
	if c.Logging.Console {
		log.SetOutput(os.Stderr)
		return
	}

	logFile := filepath.Join(c.Global.HomePath, "logs", "wslist.log")
	log.SetOutput(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    c.Logging.MaxSize, // megabytes
		MaxBackups: c.Logging.MaxBackups,
		MaxAge:     c.Logging.MaxAge, //days
		Compress:   true,
	})
}
