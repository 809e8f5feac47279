package match

import (
	"context"

	"github.com/minewars/sessiontrack/internal/model"
)

// MaxParticipants is the roster capacity of a match
const MaxParticipants = 6

// AddParticipant joins a player onto a match roster. The team is fixed at
// join time; role slots and result start unset. All preconditions (match not
// finished, pass authorization, no duplicate membership, capacity) are
// checked and applied in one atomic storage mutation.
func (c *Controller) AddParticipant(ctx context.Context, id model.MatchID, username model.Username, team model.Team, gamePass string) (*model.Participant, error) {
	if !team.Valid() {
		return nil, model.ErrInvalidTeam
	}

	if _, err := c.storage.GetPlayer(ctx, username); err != nil {
		return nil, err
	}

	updated, err := c.storage.UpdateMatch(ctx, id, func(m *model.Match) error {
		if m.Status == model.MatchStatusFinished {
			return model.ErrMatchFinished
		}
		if err := authorizeJoin(m, gamePass); err != nil {
			return err
		}
		if m.GetParticipant(username) != nil {
			return model.ErrAlreadyInMatch
		}
		if len(m.Participants) >= MaxParticipants {
			return model.ErrMatchFull
		}

		m.Participants = append(m.Participants, model.Participant{
			Username: username,
			Team:     team,
			JoinedAt: c.clock.Now(),
		})
		m.UpdatedAt = c.clock.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated.GetParticipant(username), nil
}

// Participants returns the roster in join order
func (c *Controller) Participants(ctx context.Context, id model.MatchID) ([]model.Participant, error) {
	match, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	return match.Participants, nil
}
