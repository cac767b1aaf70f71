package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const shutdownTimeout = 5 * time.Second

// Start - serves the game API until the context is canceled.
func Start(ctx context.Context, port string, handlers Handlers) error {
	router := chi.NewRouter()

	router.Get("/ping", handlers.Ping)

	router.Route("/api", func(r chi.Router) {
		r.Post("/game/new", handlers.NewGame)
		r.Get("/games/recent", handlers.RecentGames)

		r.Route("/game/{gameID}", func(r chi.Router) {
			r.Get("/", handlers.GetGame)
			r.Delete("/", handlers.DeleteGame)
			r.Post("/roll", handlers.Roll)
			r.Post("/move", handlers.MakeMove)
			r.Post("/ai-turn", handlers.AITurn)
		})
	})

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}
