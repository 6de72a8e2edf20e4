package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"toruslife/internal/stats"
)

// storeEnv names the environment variable used when -store is not given.
const storeEnv = "STATS_FILE"

func main() {
	addr := flag.String("addr", ":5000", "listen address")
	storePath := flag.String("store", "", "JSON-lines file for records (default $"+storeEnv+", memory when empty)")
	flag.Parse()

	path := *storePath
	if path == "" {
		path = os.Getenv(storeEnv)
	}

	var store stats.Store
	if path == "" {
		log.Printf("stats-server: keeping records in memory")
		store = stats.NewMemoryStore()
	} else {
		fs, err := stats.OpenFileStore(path)
		if err != nil {
			log.Fatalf("stats-server: %v", err)
		}
		log.Printf("stats-server: storing records in %s", path)
		store = fs
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           stats.NewHandler(store, log.Default()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			log.Printf("stats-server: shutdown: %v", err)
		}
	}()

	log.Printf("stats-server: listening on %s", *addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("stats-server: %v", err)
	}
}
