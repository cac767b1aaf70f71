package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/marbles-backend/internal/apperror"
	"github.com/rocketscienceinc/marbles-backend/internal/entity"
	"github.com/rocketscienceinc/marbles-backend/internal/marbles"
	"github.com/rocketscienceinc/marbles-backend/internal/repository"
)

// RollResult - a dice value, the legal moves it produced (empty when the
// turn was skipped), and the state after the roll.
type RollResult struct {
	DiceValue  int           `json:"dice_value"`
	ValidMoves []entity.Move `json:"valid_moves"`
	Game       *entity.Game  `json:"state"`
}

// TurnResult - one applied move plus the state after it.
type TurnResult struct {
	*marbles.MoveResult
	Game *entity.Game `json:"state"`
}

// AITurnResult - a full computer turn: the roll, the chosen move if the
// roll produced any, or Skipped when it did not.
type AITurnResult struct {
	DiceValue int                 `json:"dice_value"`
	Move      *entity.Move        `json:"move"`
	Skipped   bool                `json:"skipped,omitempty"`
	Result    *marbles.MoveResult `json:"result,omitempty"`
	Game      *entity.Game        `json:"state"`
}

type GamePlayService interface {
	NewGame(ctx context.Context, numPlayers int, names []string, aiPlayers []int, aiDifficulty string) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	DeleteGame(ctx context.Context, gameID string) error

	Roll(ctx context.Context, gameID string) (*RollResult, error)
	MakeMove(ctx context.Context, gameID, marbleID string, toPosition int) (*TurnResult, error)
	PlayAITurn(ctx context.Context, gameID string) (*AITurnResult, error)

	RecentGames(ctx context.Context, limit int) ([]repository.ArchivedGame, error)
}

type archiveRepo interface {
	Save(ctx context.Context, game *entity.Game) error
	Recent(ctx context.Context, limit int) ([]repository.ArchivedGame, error)
}

type gamePlayService struct {
	logger *slog.Logger

	gameService GameService
	botService  BotService
	archiveRepo archiveRepo
	dice        marbles.Dice

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewGamePlayService(logger *slog.Logger, gameService GameService, botService BotService, archiveRepo archiveRepo, dice marbles.Dice) GamePlayService {
	if dice == nil {
		dice = marbles.DefaultDice
	}

	return &gamePlayService{
		logger:      logger,
		gameService: gameService,
		botService:  botService,
		archiveRepo: archiveRepo,
		dice:        dice,
		locks:       make(map[string]*sync.Mutex),
	}
}

// lockGame - serializes state-changing operations per game id; operations on
// distinct games proceed in parallel.
func (that *gamePlayService) lockGame(gameID string) func() {
	that.mu.Lock()
	lock, ok := that.locks[gameID]
	if !ok {
		lock = &sync.Mutex{}
		that.locks[gameID] = lock
	}
	that.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

func (that *gamePlayService) NewGame(ctx context.Context, numPlayers int, names []string, aiPlayers []int, aiDifficulty string) (*entity.Game, error) {
	game, err := that.gameService.CreateGame(ctx, numPlayers, names, aiPlayers, aiDifficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "game_id", game.ID, "players", len(game.Players))

	return game, nil
}

func (that *gamePlayService) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}
	return game, nil
}

func (that *gamePlayService) DeleteGame(ctx context.Context, gameID string) error {
	defer that.lockGame(gameID)()

	if err := that.gameService.DeleteGame(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.mu.Lock()
	delete(that.locks, gameID)
	that.mu.Unlock()

	that.logger.Info("game deleted", "game_id", gameID)

	return nil
}

func (that *gamePlayService) Roll(ctx context.Context, gameID string) (*RollResult, error) {
	defer that.lockGame(gameID)()

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	diceValue := that.dice()

	moves, err := marbles.Roll(game, diceValue)
	if err != nil {
		return nil, fmt.Errorf("failed to roll: %w", err)
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if moves == nil {
		moves = []entity.Move{}
	}

	return &RollResult{
		DiceValue:  diceValue,
		ValidMoves: moves,
		Game:       game,
	}, nil
}

func (that *gamePlayService) RecentGames(ctx context.Context, limit int) ([]repository.ArchivedGame, error) {
	games, err := that.archiveRepo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent games: %w", err)
	}
	return games, nil
}

func (that *gamePlayService) MakeMove(ctx context.Context, gameID, marbleID string, toPosition int) (*TurnResult, error) {
	defer that.lockGame(gameID)()

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	result, err := marbles.ApplyMove(game, marbleID, toPosition)
	if err != nil {
		return nil, fmt.Errorf("failed to make move: %w", err)
	}

	if err = that.finishTurn(ctx, game, result); err != nil {
		return nil, err
	}

	return &TurnResult{MoveResult: result, Game: game}, nil
}

func (that *gamePlayService) PlayAITurn(ctx context.Context, gameID string) (*AITurnResult, error) {
	defer that.lockGame(gameID)()

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if !game.IsAITurn() {
		return nil, apperror.ErrNotAITurn
	}

	diceValue := that.dice()

	moves, err := marbles.Roll(game, diceValue)
	if err != nil {
		return nil, fmt.Errorf("failed to roll: %w", err)
	}

	if len(moves) == 0 {
		if err = that.gameService.UpdateGame(ctx, game); err != nil {
			return nil, fmt.Errorf("failed to update game: %w", err)
		}

		return &AITurnResult{DiceValue: diceValue, Skipped: true, Game: game}, nil
	}

	chosen := that.botService.ChooseMove(game, moves)

	result, err := marbles.ApplyMove(game, chosen.MarbleID, chosen.ToPosition)
	if err != nil {
		return nil, fmt.Errorf("bot failed to make move: %w", err)
	}

	if err = that.finishTurn(ctx, game, result); err != nil {
		return nil, err
	}

	return &AITurnResult{
		DiceValue: diceValue,
		Move:      &chosen,
		Result:    result,
		Game:      game,
	}, nil
}

// finishTurn - persists the updated aggregate and, on game over, writes the
// durable archive record.
func (that *gamePlayService) finishTurn(ctx context.Context, game *entity.Game, result *marbles.MoveResult) error {
	if err := that.gameService.UpdateGame(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	if !result.GameOver {
		return nil
	}

	log := that.logger.With("method", "finishTurn")

	if err := that.archiveRepo.Save(ctx, game); err != nil {
		// the live state is already persisted; losing the archive row is not
		// worth failing the winning move
		log.Error("failed to archive finished game", "game_id", game.ID, "error", err)
	}

	log.Info("game finished", "game_id", game.ID, "winner", *game.Winner, "turns", game.TurnCount)

	return nil
}
