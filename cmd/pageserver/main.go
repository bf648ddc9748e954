package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/shravanasati/pageserver/internal/logging"
	"github.com/shravanasati/pageserver/internal/resolve"
	"github.com/shravanasati/pageserver/internal/server"
)

func main() {
	server, err := server.Serve(server.ServerOpts{
		Address: server.DefaultAddress,
		Policy:  resolve.Unified,
		Logger:  logging.NewColored(os.Stderr),
	})
	if err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
	defer server.Close()
	log.Printf("Serving %s on %s", resolve.ContentRoot, server.Addr())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Println("Server gracefully stopped")
}
