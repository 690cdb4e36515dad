package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"

	"github.com/lucasmrqs/go-tarefas-server/identity"
	"github.com/lucasmrqs/go-tarefas-server/internal/config"
	"github.com/lucasmrqs/go-tarefas-server/notify"
	"github.com/lucasmrqs/go-tarefas-server/quotes"
	"github.com/lucasmrqs/go-tarefas-server/server"
	"github.com/lucasmrqs/go-tarefas-server/session"
	"github.com/lucasmrqs/go-tarefas-server/tasks"
	"github.com/lucasmrqs/go-tarefas-server/tasks/memstore"
	"github.com/lucasmrqs/go-tarefas-server/token"
	memuserrepo "github.com/lucasmrqs/go-tarefas-server/users/memrepo"
)

func main() {
	for {
		if err := run(); err != nil {
			log.Fatalf("Error running server: %s\n", err)
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Printf("Server stopped\n")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	displayAppname(c.GetAppName())

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	sessions := session.NewFileStore(c.GetDataFolder(), logger)
	tokens := token.New(c.GetTokenSecret(), c.GetTokenTTL())

	identityService, err := identity.NewService(
		identity.Repos{Users: memuserrepo.New()},
		sessions,
		tokens,
		identity.NewLogResetSender(logger),
		logger,
	)
	if err != nil {
		return fmt.Errorf("identity.NewService: %w", err)
	}

	scheduler := notify.NewScheduler(notify.NewLogSink(logger), c.GetNotifyDelay())
	taskRepository, err := tasks.NewRepository(memstore.New(), scheduler, logger)
	if err != nil {
		return fmt.Errorf("tasks.NewRepository: %w", err)
	}

	quoteFetcher := quotes.NewFetcher(c.GetQuoteURL(), logger)

	handler, err := server.New(c, identityService, taskRepository, quoteFetcher, tokens, logger)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}

	srv := &http.Server{Addr: c.GetPort(), Handler: handler}
	go listenAndServe(srv)
	waitForStopSignal()
	returnError = shutdown(srv)
	return returnError
}

func listenAndServe(server *http.Server) error {
	log.Printf("Server listening on %s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
