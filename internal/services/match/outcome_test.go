package match

import (
	"github.com/minewars/sessiontrack/internal/model"
)

// EndMatch tests

func (s *ControllerSuite) TestEndMatchResolvesBothTeams() {
	s.setupMatchWithPlayers("alice", "bob")
	s.createPlayer("carol")
	_, err := s.controller.AddParticipant(s.ctx, "MYGAME", "carol", model.Team2, "")
	s.Require().NoError(err)

	match, err := s.controller.EndMatch(s.ctx, "MYGAME", model.Team1, model.ResultWin)
	s.Require().NoError(err)

	s.Equal(model.MatchStatusFinished, match.Status)
	for _, p := range match.Participants {
		if p.Team == model.Team1 {
			s.Equal(model.ResultWin, p.Result)
		} else {
			s.Equal(model.ResultLose, p.Result)
		}
	}
}

func (s *ControllerSuite) TestEndMatchLoseSideNamed() {
	s.setupMatchWithPlayers("alice")
	s.createPlayer("bob")
	_, err := s.controller.AddParticipant(s.ctx, "MYGAME", "bob", model.Team2, "")
	s.Require().NoError(err)

	// Naming the losing team works the same as naming the winner
	match, err := s.controller.EndMatch(s.ctx, "MYGAME", model.Team1, model.ResultLose)
	s.Require().NoError(err)

	s.Equal(model.ResultLose, match.GetParticipant("alice").Result)
	s.Equal(model.ResultWin, match.GetParticipant("bob").Result)
}

func (s *ControllerSuite) TestEndMatchInvalidTeam() {
	s.setupMatchWithPlayers("alice")

	_, err := s.controller.EndMatch(s.ctx, "MYGAME", "TEAM3", model.ResultWin)
	s.ErrorIs(err, model.ErrInvalidTeam)
}

func (s *ControllerSuite) TestEndMatchInvalidResult() {
	s.setupMatchWithPlayers("alice")

	_, err := s.controller.EndMatch(s.ctx, "MYGAME", model.Team1, "DRAW")
	s.ErrorIs(err, model.ErrInvalidResult)
}

func (s *ControllerSuite) TestEndMatchEmptyRoster() {
	_, err := s.controller.CreateMatch(s.ctx, "MYGAME", "")
	s.Require().NoError(err)

	_, err = s.controller.EndMatch(s.ctx, "MYGAME", model.Team1, model.ResultWin)
	s.ErrorIs(err, model.ErrEmptyRoster)
}

func (s *ControllerSuite) TestEndMatchTwice() {
	s.setupMatchWithPlayers("alice")

	_, err := s.controller.EndMatch(s.ctx, "MYGAME", model.Team1, model.ResultWin)
	s.Require().NoError(err)

	_, err = s.controller.EndMatch(s.ctx, "MYGAME", model.Team2, model.ResultWin)
	s.ErrorIs(err, model.ErrMatchFinished)
}

func (s *ControllerSuite) TestEndMatchUnknownMatch() {
	_, err := s.controller.EndMatch(s.ctx, "nonexistent", model.Team1, model.ResultWin)
	s.ErrorIs(err, model.ErrMatchNotFound)
}

// Full lifecycle

func (s *ControllerSuite) TestFullMatchLifecycle() {
	for _, name := range []string{"alice", "bob", "carol", "dave"} {
		s.createPlayer(name)
	}
	_, err := s.controller.CreateMatch(s.ctx, "MYGAME", "")
	s.Require().NoError(err)

	for _, name := range []string{"alice", "bob"} {
		_, err := s.controller.AddParticipant(s.ctx, "MYGAME", model.Username(name), model.Team1, "")
		s.Require().NoError(err)
	}
	for _, name := range []string{"carol", "dave"} {
		_, err := s.controller.AddParticipant(s.ctx, "MYGAME", model.Username(name), model.Team2, "")
		s.Require().NoError(err)
	}

	for round := 1; round <= model.RoundCount; round++ {
		_, err = s.controller.AssignRole(s.ctx, "MYGAME", "alice", round, model.RoleManager)
		s.Require().NoError(err)
		_, err = s.controller.AssignRole(s.ctx, "MYGAME", "bob", round, model.RoleMiner)
		s.Require().NoError(err)
		_, err = s.controller.AssignRole(s.ctx, "MYGAME", "carol", round, model.RoleWarrior)
		s.Require().NoError(err)
	}

	match, err := s.controller.EndMatch(s.ctx, "MYGAME", model.Team2, model.ResultWin)
	s.Require().NoError(err)

	s.Equal(model.MatchStatusFinished, match.Status)
	s.Equal(model.ResultLose, match.GetParticipant("alice").Result)
	s.Equal(model.ResultLose, match.GetParticipant("bob").Result)
	s.Equal(model.ResultWin, match.GetParticipant("carol").Result)
	s.Equal(model.ResultWin, match.GetParticipant("dave").Result)
	s.Equal(model.RoleManager, match.GetParticipant("alice").Role(3))
}
