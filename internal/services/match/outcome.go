package match

import (
	"context"

	"github.com/minewars/sessiontrack/internal/model"
)

// EndMatch resolves a match: every participant on winningTeam receives
// result, every other participant its complement, and the match transitions
// to FINISHED. The roster update and the status transition are one storage
// mutation, so a failure leaves no participant partially resolved.
//
// The result argument only chooses which literal the named team receives;
// one team is always the win side and the other the lose side of the same
// call.
func (c *Controller) EndMatch(ctx context.Context, id model.MatchID, winningTeam model.Team, result model.Result) (*model.Match, error) {
	if !winningTeam.Valid() {
		return nil, model.ErrInvalidTeam
	}
	if !result.Valid() {
		return nil, model.ErrInvalidResult
	}

	return c.storage.UpdateMatch(ctx, id, func(m *model.Match) error {
		if m.Status == model.MatchStatusFinished {
			return model.ErrMatchFinished
		}
		if len(m.Participants) == 0 {
			return model.ErrEmptyRoster
		}

		for i := range m.Participants {
			if m.Participants[i].Team == winningTeam {
				m.Participants[i].Result = result
			} else {
				m.Participants[i].Result = result.Opposite()
			}
		}

		m.Status = model.MatchStatusFinished
		m.UpdatedAt = c.clock.Now()
		return nil
	})
}
