package match

import (
	"github.com/minewars/sessiontrack/internal/model"
)

func (s *ControllerSuite) setupMatchWithPlayers(names ...string) {
	_, err := s.controller.CreateMatch(s.ctx, "MYGAME", "")
	s.Require().NoError(err)
	for _, name := range names {
		s.createPlayer(name)
		_, err := s.controller.AddParticipant(s.ctx, "MYGAME", model.Username(name), model.Team1, "")
		s.Require().NoError(err)
	}
}

// AssignRole tests

func (s *ControllerSuite) TestAssignRoleSucceeds() {
	s.setupMatchWithPlayers("alice")

	participant, err := s.controller.AssignRole(s.ctx, "MYGAME", "alice", 1, model.RoleManager)
	s.Require().NoError(err)
	s.Equal(model.RoleManager, participant.Role(1))
	s.Empty(participant.Role(2))
}

func (s *ControllerSuite) TestAssignRoleTransitionsStatus() {
	s.setupMatchWithPlayers("alice")

	match, err := s.controller.GetMatch(s.ctx, "MYGAME")
	s.Require().NoError(err)
	s.Equal(model.MatchStatusStarted, match.Status)

	_, err = s.controller.AssignRole(s.ctx, "MYGAME", "alice", 1, model.RoleManager)
	s.Require().NoError(err)

	match, err = s.controller.GetMatch(s.ctx, "MYGAME")
	s.Require().NoError(err)
	s.Equal(model.MatchStatusInProgress, match.Status)
}

func (s *ControllerSuite) TestAssignRoleInvalidRound() {
	s.setupMatchWithPlayers("alice")

	_, err := s.controller.AssignRole(s.ctx, "MYGAME", "alice", 0, model.RoleManager)
	s.ErrorIs(err, model.ErrInvalidRound)

	_, err = s.controller.AssignRole(s.ctx, "MYGAME", "alice", 4, model.RoleManager)
	s.ErrorIs(err, model.ErrInvalidRound)
}

func (s *ControllerSuite) TestAssignRoleInvalidRole() {
	s.setupMatchWithPlayers("alice")

	_, err := s.controller.AssignRole(s.ctx, "MYGAME", "alice", 1, "WIZARD")
	s.ErrorIs(err, model.ErrInvalidRole)
}

func (s *ControllerSuite) TestAssignRoleNotInMatch() {
	s.setupMatchWithPlayers("alice")
	s.createPlayer("bob")

	_, err := s.controller.AssignRole(s.ctx, "MYGAME", "bob", 1, model.RoleManager)
	s.ErrorIs(err, model.ErrNotInMatch)
}

func (s *ControllerSuite) TestAssignRoleTakenOnSameTeam() {
	s.setupMatchWithPlayers("alice", "bob")

	_, err := s.controller.AssignRole(s.ctx, "MYGAME", "alice", 1, model.RoleManager)
	s.Require().NoError(err)

	_, err = s.controller.AssignRole(s.ctx, "MYGAME", "bob", 1, model.RoleManager)
	s.ErrorIs(err, model.ErrRoleTaken)
}

func (s *ControllerSuite) TestAssignRoleSameRoleOtherTeam() {
	s.setupMatchWithPlayers("alice")
	s.createPlayer("bob")
	_, err := s.controller.AddParticipant(s.ctx, "MYGAME", "bob", model.Team2, "")
	s.Require().NoError(err)

	_, err = s.controller.AssignRole(s.ctx, "MYGAME", "alice", 1, model.RoleManager)
	s.Require().NoError(err)

	// Exclusivity is per team: the other team's slot is free
	_, err = s.controller.AssignRole(s.ctx, "MYGAME", "bob", 1, model.RoleManager)
	s.NoError(err)
}

func (s *ControllerSuite) TestAssignRoleSameRoleOtherRound() {
	s.setupMatchWithPlayers("alice", "bob")

	_, err := s.controller.AssignRole(s.ctx, "MYGAME", "alice", 1, model.RoleManager)
	s.Require().NoError(err)

	_, err = s.controller.AssignRole(s.ctx, "MYGAME", "bob", 2, model.RoleManager)
	s.NoError(err)
}

func (s *ControllerSuite) TestAssignRoleReassignIsIdempotent() {
	s.setupMatchWithPlayers("alice")

	_, err := s.controller.AssignRole(s.ctx, "MYGAME", "alice", 1, model.RoleManager)
	s.Require().NoError(err)

	participant, err := s.controller.AssignRole(s.ctx, "MYGAME", "alice", 1, model.RoleManager)
	s.Require().NoError(err)
	s.Equal(model.RoleManager, participant.Role(1))
}

func (s *ControllerSuite) TestAssignRoleSwitchReleasesOldRole() {
	s.setupMatchWithPlayers("alice", "bob")

	_, err := s.controller.AssignRole(s.ctx, "MYGAME", "alice", 1, model.RoleManager)
	s.Require().NoError(err)

	// Alice switches to miner, releasing manager for round 1
	participant, err := s.controller.AssignRole(s.ctx, "MYGAME", "alice", 1, model.RoleMiner)
	s.Require().NoError(err)
	s.Equal(model.RoleMiner, participant.Role(1))

	_, err = s.controller.AssignRole(s.ctx, "MYGAME", "bob", 1, model.RoleManager)
	s.NoError(err)
}

func (s *ControllerSuite) TestAssignRoleFinishedMatch() {
	s.setupMatchWithPlayers("alice")

	_, err := s.controller.EndMatch(s.ctx, "MYGAME", model.Team1, model.ResultWin)
	s.Require().NoError(err)

	_, err = s.controller.AssignRole(s.ctx, "MYGAME", "alice", 1, model.RoleManager)
	s.ErrorIs(err, model.ErrMatchFinished)
}
