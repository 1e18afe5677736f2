package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AbelAliasAbraham/ToDo-List-Using-React-and-Node.js/internal/config"
	"github.com/AbelAliasAbraham/ToDo-List-Using-React-and-Node.js/internal/handlers"
	"github.com/AbelAliasAbraham/ToDo-List-Using-React-and-Node.js/internal/store"
	"github.com/AbelAliasAbraham/ToDo-List-Using-React-and-Node.js/internal/token"
)

func main() {
	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	cfg := config.Load()

	db, err := store.Open(cfg.DatabaseURL)
	if err != nil {
		errorLog.Fatal("Failed to open store:", err)
	}
	defer db.Close()
	infoLog.Println("Store ready")

	signer := token.NewSigner(cfg.JWTKey)
	router := handlers.New(db, signer).Routes()

	srv := &http.Server{
		Addr:     ":" + cfg.Port,
		Handler:  router,
		ErrorLog: errorLog,

		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		infoLog.Printf("Starting server on http://localhost%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errorLog.Fatal(err)
		}
	}()

	<-ctx.Done()
	infoLog.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		errorLog.Println("Shutdown:", err)
	}
}
