package match

import (
	"context"

	"github.com/minewars/sessiontrack/internal/model"
)

// AssignRole records a role in one of the caller's three round slots.
//
// Role exclusivity is strict: within one match, one team, and one round
// slot, a role value is held by at most one participant. The caller's own
// slot is overwritten freely, so re-assigning the same role is idempotent
// and switching to a different role releases the old one.
func (c *Controller) AssignRole(ctx context.Context, id model.MatchID, username model.Username, round int, role model.Role) (*model.Participant, error) {
	if !model.ValidRound(round) {
		return nil, model.ErrInvalidRound
	}
	if !role.Valid() {
		return nil, model.ErrInvalidRole
	}

	if _, err := c.storage.GetPlayer(ctx, username); err != nil {
		return nil, err
	}

	updated, err := c.storage.UpdateMatch(ctx, id, func(m *model.Match) error {
		if m.Status == model.MatchStatusFinished {
			return model.ErrMatchFinished
		}

		p := m.GetParticipant(username)
		if p == nil {
			return model.ErrNotInMatch
		}

		if m.RoleTaken(p.Team, round, role, username) {
			return model.ErrRoleTaken
		}

		p.SetRole(round, role)

		// First role assignment moves the match out of its initial state
		if m.Status == model.MatchStatusStarted {
			m.Status = model.MatchStatusInProgress
		}
		m.UpdatedAt = c.clock.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated.GetParticipant(username), nil
}
