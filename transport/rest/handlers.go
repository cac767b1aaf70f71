package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/marbles-backend/internal/apperror"
	"github.com/rocketscienceinc/marbles-backend/internal/entity"
	"github.com/rocketscienceinc/marbles-backend/internal/repository"
	"github.com/rocketscienceinc/marbles-backend/internal/service"
)

const defaultRecentLimit = 10

type Handlers interface {
	Ping(w http.ResponseWriter, r *http.Request)

	NewGame(w http.ResponseWriter, r *http.Request)
	GetGame(w http.ResponseWriter, r *http.Request)
	DeleteGame(w http.ResponseWriter, r *http.Request)

	Roll(w http.ResponseWriter, r *http.Request)
	MakeMove(w http.ResponseWriter, r *http.Request)
	AITurn(w http.ResponseWriter, r *http.Request)

	RecentGames(w http.ResponseWriter, r *http.Request)
}

type gamePlayService interface {
	NewGame(ctx context.Context, numPlayers int, names []string, aiPlayers []int, aiDifficulty string) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID string) error

	Roll(ctx context.Context, gameID string) (*service.RollResult, error)
	MakeMove(ctx context.Context, gameID, marbleID string, toPosition int) (*service.TurnResult, error)
	PlayAITurn(ctx context.Context, gameID string) (*service.AITurnResult, error)

	RecentGames(ctx context.Context, limit int) ([]repository.ArchivedGame, error)
}

type handlers struct {
	logger   *slog.Logger
	gamePlay gamePlayService
}

func NewHandlers(logger *slog.Logger, gamePlay gamePlayService) Handlers {
	return &handlers{
		logger:   logger.With("component", "rest"),
		gamePlay: gamePlay,
	}
}

func (that *handlers) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

type newGameRequest struct {
	NumPlayers   int      `json:"num_players"`
	PlayerNames  []string `json:"player_names"`
	AIPlayers    []int    `json:"ai_players"`
	AIDifficulty string   `json:"ai_difficulty"`
	Mode         string   `json:"mode"`
}

func (that *handlers) NewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.NumPlayers == 0 {
		req.NumPlayers = 2
	}

	// "ai" mode plays one human against computer opponents
	if req.Mode == "ai" {
		req.AIPlayers = req.AIPlayers[:0]
		for i := 1; i < req.NumPlayers; i++ {
			req.AIPlayers = append(req.AIPlayers, i)
		}
	}

	game, err := that.gamePlay.NewGame(r.Context(), req.NumPlayers, req.PlayerNames, req.AIPlayers, req.AIDifficulty)
	if err != nil {
		that.respondServiceError(w, err)
		return
	}

	that.respondJSON(w, http.StatusOK, map[string]any{
		"game_id": game.ID,
		"state":   game,
	})
}

func (that *handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	game, err := that.gamePlay.GetGame(r.Context(), gameID)
	if err != nil {
		that.respondServiceError(w, err)
		return
	}

	that.respondJSON(w, http.StatusOK, map[string]any{
		"game_id": game.ID,
		"state":   game,
	})
}

func (that *handlers) DeleteGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	if err := that.gamePlay.DeleteGame(r.Context(), gameID); err != nil {
		that.respondServiceError(w, err)
		return
	}

	that.respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (that *handlers) Roll(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	result, err := that.gamePlay.Roll(r.Context(), gameID)
	if err != nil {
		that.respondServiceError(w, err)
		return
	}

	that.respondJSON(w, http.StatusOK, result)
}

type makeMoveRequest struct {
	MarbleID   string `json:"marble_id"`
	ToPosition *int   `json:"to_position"`
}

func (that *handlers) MakeMove(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	var req makeMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.MarbleID == "" || req.ToPosition == nil {
		that.respondError(w, http.StatusBadRequest, "missing marble_id or to_position")
		return
	}

	result, err := that.gamePlay.MakeMove(r.Context(), gameID, req.MarbleID, *req.ToPosition)
	if err != nil {
		that.respondServiceError(w, err)
		return
	}

	that.respondJSON(w, http.StatusOK, result)
}

func (that *handlers) AITurn(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	result, err := that.gamePlay.PlayAITurn(r.Context(), gameID)
	if err != nil {
		that.respondServiceError(w, err)
		return
	}

	that.respondJSON(w, http.StatusOK, result)
}

func (that *handlers) RecentGames(w http.ResponseWriter, r *http.Request) {
	games, err := that.gamePlay.RecentGames(r.Context(), defaultRecentLimit)
	if err != nil {
		that.respondServiceError(w, err)
		return
	}

	if games == nil {
		games = []repository.ArchivedGame{}
	}

	that.respondJSON(w, http.StatusOK, map[string]any{"games": games})
}

func (that *handlers) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrGameNotFound):
		that.respondError(w, http.StatusNotFound, "game not found")
	case errors.Is(err, apperror.ErrInvalidStateTransition),
		errors.Is(err, apperror.ErrIllegalMove),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrNotAITurn),
		errors.Is(err, apperror.ErrMarbleNotFound),
		errors.Is(err, apperror.ErrInvalidPlayerCount),
		errors.Is(err, apperror.ErrGameFinished):
		that.respondError(w, http.StatusBadRequest, err.Error())
	default:
		that.logger.Error("request failed", "error", err)
		that.respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (that *handlers) respondError(w http.ResponseWriter, status int, message string) {
	that.respondJSON(w, status, map[string]any{"error": message})
}

func (that *handlers) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}
