package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"miniblog/pkg/api"
	"miniblog/pkg/config"
	"miniblog/pkg/credential"
	"miniblog/pkg/info"
	"miniblog/pkg/model"
	"miniblog/pkg/xlog"
)

var logger = xlog.GetLogger()

var (
	fLogDir  string
	fLogFile string
)

func init() {
	flag.StringVar(&fLogDir, "logdir", "", "")
	flag.StringVar(&fLogFile, "logfile", "", "")
}

func main() {
	flag.Parse()

	// Initialize the Shared config
	config.EasyInit()

	// Initialize the logger
	if fLogDir == "" {
		fLogDir = filepath.Join(config.Shared.DataDir, "logs")
	}
	if fLogFile == "" {
		fLogFile = "miniblog.log"
	}
	logPath := filepath.Join(fLogDir, fLogFile)
	xlog.Init("miniblog", logPath)
	logger.Infof("miniblog %s (%s) started, instance %s", info.Version, info.GitRev, info.InstanceID)
	logger.Infof("xlog in %s", logPath)

	// Handle signals
	go handleSignals()

	// Connect the database; fatal if it fails. The handle lives for the
	// whole process and is handed to the HTTP layer explicitly.
	db := model.Open(&config.Shared.MySQL.Main)

	cred := credential.FromConfig(config.Shared.Credential)

	app := api.NewApp(db, cred)

	addr := fmt.Sprintf(":%d", config.Shared.ListenPort())
	logger.Infof("http listening on %s", addr)
	if err := app.Listen(addr); err != nil {
		logger.Fatalf("http server failed with err:%s", err)
	}
}

// handleSignals handles linux signals
//
//	Function 1: Change log level via SIGUSR1 signal
//		docker exec <container_id> sh -c 'export XLOG_LVL=TRACE && kill -SIGUSR1 1'
func handleSignals() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGUSR1)

	for sig := range sigChan {
		if sig != syscall.SIGUSR1 {
			continue
		}
		level := os.Getenv("XLOG_LVL")
		if level == "" {
			continue
		}
		logger.SetLevel(level)
		logger.Infof("log level set to %s via signal", level)
	}
}
