package ladder

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Service guards the ladder state behind a mutex and persists every
// mutation. Slash commands and the pairings scheduler run on separate
// goroutines, so all access goes through here.
type Service struct {
	logger *zap.Logger
	store  *Store

	mu    sync.Mutex
	state *State
}

// NewService loads the persisted state and returns a ready service.
func NewService(logger *zap.Logger, store *Store) (*Service, error) {
	st, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load ladder state: %w", err)
	}

	logger = logger.Named("ladder_service")
	logger.Info("Ladder state loaded",
		zap.Int("players", len(st.Players)),
		zap.Int("round", st.Round),
		zap.String("rule", string(st.Rule)),
	)

	return &Service{
		logger: logger,
		store:  store,
		state:  st,
	}, nil
}

// Players returns a copy of the current standings, rank order.
func (s *Service) Players() []Player {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Player, len(s.state.Players))
	copy(out, s.state.Players)

	return out
}

// Round returns the current round counter.
func (s *Service) Round() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Round
}

// Rule returns the active promotion rule.
func (s *Service) Rule() Rule {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Rule
}

// SetRule switches the promotion rule and persists it.
func (s *Service) SetRule(r Rule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Rule = r
	if err := s.persist(); err != nil {
		return err
	}
	s.logger.Info("Ladder rule changed", zap.String("rule", string(r)))

	return nil
}

// AddPlayer appends a player at the bottom and returns the new rank.
func (s *Service) AddPlayer(name string, userID uint64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rank := s.state.AddPlayer(name, userID)
	if err := s.persist(); err != nil {
		return 0, err
	}
	s.logger.Info("Player added", zap.String("name", name), zap.Int("rank", rank))

	return rank, nil
}

// RemovePlayer removes a player by rank number or exact name.
func (s *Service) RemovePlayer(identifier string) (Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.state.RemovePlayer(identifier)
	if err != nil {
		return Player{}, err
	}
	if err := s.persist(); err != nil {
		return Player{}, err
	}
	s.logger.Info("Player removed", zap.String("name", p.Name))

	return p, nil
}

// SetRank moves the identified player to newRank.
func (s *Service) SetRank(identifier string, newRank int) (Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.state.SetRank(identifier, newRank)
	if err != nil {
		return Player{}, err
	}
	if err := s.persist(); err != nil {
		return Player{}, err
	}
	s.logger.Info("Player rank changed", zap.String("name", p.Name), zap.Int("newRank", newRank))

	return p, nil
}

// GeneratePairings produces a new round of adjacent-rank pairings and
// returns them together with the new round number.
func (s *Service) GeneratePairings() ([]Pairing, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.state.Players) == 0 {
		return nil, 0, ErrEmptyLadder
	}

	pairings := s.state.GeneratePairings()
	if err := s.persist(); err != nil {
		return nil, 0, err
	}
	s.logger.Info("Pairings generated",
		zap.Int("round", s.state.Round),
		zap.Int("pairings", len(pairings)),
	)

	return pairings, s.state.Round, nil
}

// ApplyResult records a reported match and adjusts ranks.
func (s *Service) ApplyResult(winnerRank, loserRank int, score string, reporterID uint64) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.state.ApplyResult(winnerRank, loserRank, score, reporterID)
	if err != nil {
		return Result{}, err
	}
	if err := s.persist(); err != nil {
		return Result{}, err
	}
	s.logger.Info("Match result recorded",
		zap.String("resultID", result.ID),
		zap.String("winner", result.Winner),
		zap.String("loser", result.Loser),
		zap.String("score", result.Score),
	)

	return result, nil
}

// RecentResults returns the last n reported results, newest last.
func (s *Service) RecentResults(n int) []Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.RecentResults(n)
}

// persist saves the current state. Callers must hold the mutex.
func (s *Service) persist() error {
	if err := s.store.Save(s.state); err != nil {
		s.logger.Error("Failed to persist ladder state", zap.Error(err))

		return err
	}

	return nil
}
