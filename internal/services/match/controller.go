package match

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/minewars/sessiontrack/internal/dependencies/clock"
	"github.com/minewars/sessiontrack/internal/dependencies/random"
	"github.com/minewars/sessiontrack/internal/model"
	"github.com/minewars/sessiontrack/internal/storage"
)

const (
	// MatchIDLength is the length of generated match identifiers
	MatchIDLength = 6
	// MatchIDAlphabet is the characters used in generated identifiers (avoid confusing chars)
	MatchIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Controller owns the match lifecycle: registry-level invariants (identity,
// pass protection, status transitions), the roster, per-round role
// assignment, and outcome resolution.
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
}

// NewController creates a new match Controller
func NewController(storage storage.Storage, clock clock.Clock, random random.Random) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
	}
}

// CreateMatch creates a match. The identifier is an opaque token: callers may
// supply their own (ErrMatchExists on collision) or leave it empty to have
// one generated. Visibility is PRIVATE iff a game pass is supplied; the pass
// is stored only as a bcrypt hash.
func (c *Controller) CreateMatch(ctx context.Context, id model.MatchID, gamePass string) (*model.Match, error) {
	now := c.clock.Now()

	if id == "" {
		generated, err := c.generateID(ctx)
		if err != nil {
			return nil, err
		}
		id = generated
	}

	visibility := model.VisibilityPublic
	passHash := ""
	if gamePass != "" {
		visibility = model.VisibilityPrivate
		hash, err := bcrypt.GenerateFromPassword([]byte(gamePass), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		passHash = string(hash)
	}

	match := &model.Match{
		ID:           id,
		Status:       model.MatchStatusStarted,
		Visibility:   visibility,
		PassHash:     passHash,
		Participants: []model.Participant{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := c.storage.CreateMatch(ctx, match); err != nil {
		return nil, err
	}
	return match, nil
}

// GetMatch retrieves a match by identifier
func (c *Controller) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	return c.storage.GetMatch(ctx, id)
}

// AuthorizeJoin checks whether the supplied game pass admits a caller to the
// match: PUBLIC matches always pass, PRIVATE matches require a pass
// (ErrPassRequired when missing) matching the stored hash (ErrInvalidPass on
// mismatch).
func (c *Controller) AuthorizeJoin(ctx context.Context, id model.MatchID, gamePass string) error {
	match, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return err
	}
	return authorizeJoin(match, gamePass)
}

func authorizeJoin(match *model.Match, gamePass string) error {
	if match.Visibility != model.VisibilityPrivate {
		return nil
	}
	if gamePass == "" {
		return model.ErrPassRequired
	}
	if err := bcrypt.CompareHashAndPassword([]byte(match.PassHash), []byte(gamePass)); err != nil {
		return model.ErrInvalidPass
	}
	return nil
}

// generateID generates an identifier not currently in use
func (c *Controller) generateID(ctx context.Context) (model.MatchID, error) {
	for {
		id := model.MatchID(c.random.String(MatchIDLength, MatchIDAlphabet))
		exists, err := c.storage.MatchExists(ctx, id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateMatch(ctx context.Context, id model.MatchID, gamePass string) (*model.Match, error)
	GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error)
	AuthorizeJoin(ctx context.Context, id model.MatchID, gamePass string) error
	AddParticipant(ctx context.Context, id model.MatchID, username model.Username, team model.Team, gamePass string) (*model.Participant, error)
	Participants(ctx context.Context, id model.MatchID) ([]model.Participant, error)
	AssignRole(ctx context.Context, id model.MatchID, username model.Username, round int, role model.Role) (*model.Participant, error)
	EndMatch(ctx context.Context, id model.MatchID, winningTeam model.Team, result model.Result) (*model.Match, error)
}

var _ ControllerInterface = (*Controller)(nil)
