package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"oca-epak/epak"
	"oca-epak/gateway"
	"oca-epak/internal/config"
	"oca-epak/internal/logger"

	"github.com/gin-gonic/gin"
	"gopkg.in/fsnotify.v1"
)

func main() {
	var (
		cnf = &config.Conf{}

		configFile = flag.String("config", "./configs/config.yml", "Usage: -config=<config_file>")
		logConfig  = flag.String("log", "./configs/logger.yml", "Usage: -log=<logger_config_file>")
		debug      = flag.Bool("debug", false, "Print debug information on stderr")
	)

	flag.Parse()

	logFile := logger.InitLogger(*debug, *logConfig)
	if logFile != nil {
		defer logFile.Close()
	}
	logger.Info("Application starting...")

	config.GetConfig(*configFile, cnf)
	cnf.RunInDebug = *debug

	if *debug {
		logger.Debug("Config:", cnf)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	cl := epak.New(epak.Options{
		BaseURL:         cnf.Oca.EpakAddr,
		TrackingBaseURL: cnf.Oca.TrackingAddr,
		Timeout:         cnf.Oca.Timeout(),
	})

	app := gin.Default()
	app.Use(
		config.Inject("cnf", cnf),
	)

	gateway.InitRoutes(app, cl)

	srv := &http.Server{
		Addr:    cnf.Server.Listen,
		Handler: app,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Listen: %s\n", err)
		}
	}()

	// Endpoint addresses are read once at startup, so a changed config only
	// takes effect after a restart. Warn about it instead of pretending.
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Crit(err)
	}
	defer watcher.Close()
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Rename == fsnotify.Rename {
					logger.Warning("Configuration changed, restart the gateway to apply it")
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Println("error:", err)
			}
		}
	}()

	if err := watcher.Add(*configFile); err != nil {
		logger.Warning("Cannot watch config file:", err)
	}

	logger.Info("Application started")

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP, syscall.SIGINT)

	quit := make(chan int)

	go func() {
		for {
			sig := <-signals
			switch sig {
			// kill -SIGHUP XXXX
			// kill -SIGINT XXXX or Ctrl+c
			case syscall.SIGHUP, syscall.SIGINT:
				logger.Info("Catch OS signal! Exiting...")

				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				if err := srv.Shutdown(ctx); err != nil {
					log.Fatal("App forced to shutdown:", err)
				}

				logger.Info("Application stopped correctly!")

				quit <- 0
			default:
				logger.Warning("Unknown signal")
			}
		}
	}()

	code := <-quit

	os.Exit(code)
}
