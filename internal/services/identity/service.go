package identity

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/minewars/sessiontrack/internal/dependencies/clock"
	"github.com/minewars/sessiontrack/internal/model"
	"github.com/minewars/sessiontrack/internal/storage"
)

// ErrInvalidCredentials is returned on login when the username is unknown or
// the password does not match; callers cannot distinguish the two cases
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service owns player registration and credential verification
type Service struct {
	storage storage.Storage
	clock   clock.Clock
}

// New creates a new identity Service
func New(storage storage.Storage, clock clock.Clock) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
	}
}

// RegisterInput carries the fields accepted at registration
type RegisterInput struct {
	Username  model.Username
	Name      string
	Surname   string
	Gender    model.Gender
	BirthDate string
	Age       int
	Address   string
	Email     string
	Password  string
	IconID    int64
}

// Register creates a player account with a bcrypt credential hash
func (s *Service) Register(ctx context.Context, input RegisterInput) (*model.Player, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	player := &model.Player{
		Username:     input.Username,
		Name:         input.Name,
		Surname:      input.Surname,
		Gender:       input.Gender,
		BirthDate:    input.BirthDate,
		Age:          input.Age,
		Address:      input.Address,
		Email:        input.Email,
		PasswordHash: string(hash),
		IconID:       input.IconID,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.storage.CreatePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// Login verifies a player's credentials and returns the player record
func (s *Service) Login(ctx context.Context, username model.Username, password string) (*model.Player, error) {
	player, err := s.storage.GetPlayer(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(player.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return player, nil
}

// Player looks up a player by username
func (s *Service) Player(ctx context.Context, username model.Username) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, username)
}
