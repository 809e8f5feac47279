package match

import (
	"github.com/minewars/sessiontrack/internal/model"
)

// AddParticipant tests

func (s *ControllerSuite) TestAddParticipantSucceeds() {
	s.createPlayer("alice")
	_, err := s.controller.CreateMatch(s.ctx, "MYGAME", "")
	s.Require().NoError(err)

	participant, err := s.controller.AddParticipant(s.ctx, "MYGAME", "alice", model.Team1, "")
	s.Require().NoError(err)

	s.Equal(model.Username("alice"), participant.Username)
	s.Equal(model.Team1, participant.Team)
	s.Empty(participant.Result)
	for round := 1; round <= model.RoundCount; round++ {
		s.Empty(participant.Role(round))
	}
}

func (s *ControllerSuite) TestAddParticipantInvalidTeam() {
	s.createPlayer("alice")
	_, err := s.controller.CreateMatch(s.ctx, "MYGAME", "")
	s.Require().NoError(err)

	_, err = s.controller.AddParticipant(s.ctx, "MYGAME", "alice", "TEAM3", "")
	s.ErrorIs(err, model.ErrInvalidTeam)
}

func (s *ControllerSuite) TestAddParticipantUnknownPlayer() {
	_, err := s.controller.CreateMatch(s.ctx, "MYGAME", "")
	s.Require().NoError(err)

	_, err = s.controller.AddParticipant(s.ctx, "MYGAME", "ghost", model.Team1, "")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ControllerSuite) TestAddParticipantUnknownMatch() {
	s.createPlayer("alice")

	_, err := s.controller.AddParticipant(s.ctx, "nonexistent", "alice", model.Team1, "")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *ControllerSuite) TestAddParticipantDuplicate() {
	s.createPlayer("alice")
	_, err := s.controller.CreateMatch(s.ctx, "MYGAME", "")
	s.Require().NoError(err)

	_, err = s.controller.AddParticipant(s.ctx, "MYGAME", "alice", model.Team1, "")
	s.Require().NoError(err)

	_, err = s.controller.AddParticipant(s.ctx, "MYGAME", "alice", model.Team2, "")
	s.ErrorIs(err, model.ErrAlreadyInMatch)
}

func (s *ControllerSuite) TestAddParticipantCapacity() {
	_, err := s.controller.CreateMatch(s.ctx, "MYGAME", "")
	s.Require().NoError(err)

	names := []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7"}
	for _, name := range names {
		s.createPlayer(name)
	}

	for _, name := range names[:MaxParticipants] {
		_, err := s.controller.AddParticipant(s.ctx, "MYGAME", model.Username(name), model.Team1, "")
		s.Require().NoError(err)
	}

	_, err = s.controller.AddParticipant(s.ctx, "MYGAME", "p7", model.Team2, "")
	s.ErrorIs(err, model.ErrMatchFull)
}

func (s *ControllerSuite) TestAddParticipantPrivateMatchRequiresPass() {
	s.createPlayer("alice")
	_, err := s.controller.CreateMatch(s.ctx, "MYGAME", "hunter2")
	s.Require().NoError(err)

	_, err = s.controller.AddParticipant(s.ctx, "MYGAME", "alice", model.Team1, "")
	s.ErrorIs(err, model.ErrPassRequired)

	_, err = s.controller.AddParticipant(s.ctx, "MYGAME", "alice", model.Team1, "wrong")
	s.ErrorIs(err, model.ErrInvalidPass)

	_, err = s.controller.AddParticipant(s.ctx, "MYGAME", "alice", model.Team1, "hunter2")
	s.NoError(err)
}

func (s *ControllerSuite) TestAddParticipantFinishedMatch() {
	s.createPlayer("alice")
	s.createPlayer("bob")
	_, err := s.controller.CreateMatch(s.ctx, "MYGAME", "")
	s.Require().NoError(err)

	_, err = s.controller.AddParticipant(s.ctx, "MYGAME", "alice", model.Team1, "")
	s.Require().NoError(err)
	_, err = s.controller.EndMatch(s.ctx, "MYGAME", model.Team1, model.ResultWin)
	s.Require().NoError(err)

	_, err = s.controller.AddParticipant(s.ctx, "MYGAME", "bob", model.Team2, "")
	s.ErrorIs(err, model.ErrMatchFinished)
}

// Participants tests

func (s *ControllerSuite) TestParticipantsJoinOrder() {
	for _, name := range []string{"carol", "alice", "bob"} {
		s.createPlayer(name)
	}
	_, err := s.controller.CreateMatch(s.ctx, "MYGAME", "")
	s.Require().NoError(err)

	for _, name := range []string{"carol", "alice", "bob"} {
		_, err := s.controller.AddParticipant(s.ctx, "MYGAME", model.Username(name), model.Team1, "")
		s.Require().NoError(err)
	}

	participants, err := s.controller.Participants(s.ctx, "MYGAME")
	s.Require().NoError(err)
	s.Require().Len(participants, 3)
	s.Equal(model.Username("carol"), participants[0].Username)
	s.Equal(model.Username("alice"), participants[1].Username)
	s.Equal(model.Username("bob"), participants[2].Username)
}

func (s *ControllerSuite) TestParticipantsEmptyRoster() {
	_, err := s.controller.CreateMatch(s.ctx, "MYGAME", "")
	s.Require().NoError(err)

	participants, err := s.controller.Participants(s.ctx, "MYGAME")
	s.Require().NoError(err)
	s.Empty(participants)
}
