package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/qnkhuat/polyterm/pkg"
)

const shutdownTimeout = 10 * time.Second

var done = make(chan bool)

func main() {
	configPath := flag.String("config", pkg.DefaultConfigPath(), "path to config file")
	logPath := flag.String("log", "", "path to log file (default stderr)")
	listen := flag.String("listen", "", "SSH listen address (default from config)")
	binary := flag.String("polyterm", "", "path to polyterm client (default from config)")
	hostKey := flag.String("host-key", "", "path to SSH host key")
	flag.Parse()

	if *logPath != "" {
		if err := pkg.InitLog(*logPath, "SERVER: "); err != nil {
			log.Fatal(err)
		}
	} else {
		log.SetPrefix("SERVER: ")
	}

	config, err := pkg.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *listen != "" {
		config.SSH.Address = *listen
	}
	if *binary != "" {
		config.SSH.Binary = *binary
	}
	if *hostKey != "" {
		config.SSH.HostKeyFile = *hostKey
	}

	// every session runs the client with the server's view settings
	s, err := pkg.NewSSHServer(config, "--config", *configPath)
	if err != nil {
		log.Fatalf("failed to create server: %s", err)
	}

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, pkg.ErrServerClosed) {
			log.Printf("Server stopped: %s", err)
		}

		done <- true
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc

		done <- true
	}()

	<-done

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Printf("Shutting down with %d sessions", s.Sessions())
	if err := s.Shutdown(ctx); err != nil {
		log.Printf("Shutdown: %s", err)
	}
}
