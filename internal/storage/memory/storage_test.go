package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/minewars/sessiontrack/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Player tests

func (s *StorageSuite) TestCreateAndGetPlayer() {
	player := &model.Player{
		Username:     "alice",
		Name:         "Alice",
		Surname:      "Miner",
		PasswordHash: "hash123",
		CreatedAt:    time.Now(),
	}

	err := s.storage.CreatePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(player.Username, retrieved.Username)
	s.Equal(player.Name, retrieved.Name)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestCreatePlayerDuplicateUsername() {
	player := &model.Player{Username: "alice", Name: "Alice"}
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, player))

	err := s.storage.CreatePlayer(s.ctx, &model.Player{Username: "alice", Name: "Other"})
	s.ErrorIs(err, model.ErrUsernameExists)
}

// Match tests

func (s *StorageSuite) TestCreateAndGetMatch() {
	match := &model.Match{
		ID:         "ABC123",
		Status:     model.MatchStatusStarted,
		Visibility: model.VisibilityPublic,
		CreatedAt:  time.Now(),
	}

	err := s.storage.CreateMatch(s.ctx, match)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetMatch(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.Equal(match.ID, retrieved.ID)
	s.Equal(model.MatchStatusStarted, retrieved.Status)
}

func (s *StorageSuite) TestGetMatchNotFound() {
	_, err := s.storage.GetMatch(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *StorageSuite) TestCreateMatchDuplicateID() {
	match := &model.Match{ID: "ABC123", Status: model.MatchStatusStarted}
	s.Require().NoError(s.storage.CreateMatch(s.ctx, match))

	err := s.storage.CreateMatch(s.ctx, &model.Match{ID: "ABC123"})
	s.ErrorIs(err, model.ErrMatchExists)
}

func (s *StorageSuite) TestMatchExists() {
	exists, err := s.storage.MatchExists(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.False(exists)

	s.Require().NoError(s.storage.CreateMatch(s.ctx, &model.Match{ID: "ABC123"}))

	exists, err = s.storage.MatchExists(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StorageSuite) TestUpdateMatch() {
	match := &model.Match{ID: "ABC123", Status: model.MatchStatusStarted}
	s.Require().NoError(s.storage.CreateMatch(s.ctx, match))

	updated, err := s.storage.UpdateMatch(s.ctx, "ABC123", func(m *model.Match) error {
		m.Participants = append(m.Participants, model.Participant{
			Username: "alice",
			Team:     model.Team1,
		})
		return nil
	})
	s.Require().NoError(err)
	s.Len(updated.Participants, 1)

	retrieved, err := s.storage.GetMatch(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.Len(retrieved.Participants, 1)
	s.Equal(model.Username("alice"), retrieved.Participants[0].Username)
}

func (s *StorageSuite) TestUpdateMatchErrorLeavesMatchUnchanged() {
	match := &model.Match{ID: "ABC123", Status: model.MatchStatusStarted}
	s.Require().NoError(s.storage.CreateMatch(s.ctx, match))

	_, err := s.storage.UpdateMatch(s.ctx, "ABC123", func(m *model.Match) error {
		m.Participants = append(m.Participants, model.Participant{Username: "alice"})
		return model.ErrMatchFull
	})
	s.ErrorIs(err, model.ErrMatchFull)

	retrieved, err := s.storage.GetMatch(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.Empty(retrieved.Participants)
}

func (s *StorageSuite) TestUpdateMatchNotFound() {
	_, err := s.storage.UpdateMatch(s.ctx, "nonexistent", func(m *model.Match) error {
		return nil
	})
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *StorageSuite) TestMatchesForPlayer() {
	for _, id := range []model.MatchID{"AAA111", "BBB222", "CCC333"} {
		s.Require().NoError(s.storage.CreateMatch(s.ctx, &model.Match{ID: id}))
	}

	for _, id := range []model.MatchID{"AAA111", "CCC333"} {
		_, err := s.storage.UpdateMatch(s.ctx, id, func(m *model.Match) error {
			m.Participants = append(m.Participants, model.Participant{Username: "alice", Team: model.Team1})
			return nil
		})
		s.Require().NoError(err)
	}

	matches, err := s.storage.MatchesForPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Len(matches, 2)

	matches, err = s.storage.MatchesForPlayer(s.ctx, "bob")
	s.Require().NoError(err)
	s.Empty(matches)
}

// Catalog tests

func (s *StorageSuite) TestSaveAndGetIcon() {
	icon := &model.Icon{ID: 1, Name: "pickaxe"}
	s.Require().NoError(s.storage.SaveIcon(s.ctx, icon))

	retrieved, err := s.storage.GetIcon(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("pickaxe", retrieved.Name)
}

func (s *StorageSuite) TestGetIconNotFound() {
	_, err := s.storage.GetIcon(s.ctx, 42)
	s.ErrorIs(err, model.ErrIconNotFound)
}

func (s *StorageSuite) TestListIcons() {
	s.Require().NoError(s.storage.SaveIcon(s.ctx, &model.Icon{ID: 2, Name: "lantern"}))
	s.Require().NoError(s.storage.SaveIcon(s.ctx, &model.Icon{ID: 1, Name: "pickaxe"}))

	icons, err := s.storage.ListIcons(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(icons, 2)
	s.Equal(int64(1), icons[0].ID)
	s.Equal(int64(2), icons[1].ID)
}

func (s *StorageSuite) TestSaveAndGetAchievement() {
	a := &model.Achievement{ID: 1, Name: "First Blood", Description: "Win your first match"}
	s.Require().NoError(s.storage.SaveAchievement(s.ctx, a))

	retrieved, err := s.storage.GetAchievement(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("First Blood", retrieved.Name)
}

func (s *StorageSuite) TestGetAchievementNotFound() {
	_, err := s.storage.GetAchievement(s.ctx, 42)
	s.ErrorIs(err, model.ErrAchievementNotFound)
}

func (s *StorageSuite) TestListAchievements() {
	s.Require().NoError(s.storage.SaveAchievement(s.ctx, &model.Achievement{ID: 2, Name: "Veteran"}))
	s.Require().NoError(s.storage.SaveAchievement(s.ctx, &model.Achievement{ID: 1, Name: "First Blood"}))

	achievements, err := s.storage.ListAchievements(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(achievements, 2)
	s.Equal(int64(1), achievements[0].ID)
}

// Grant tests

func (s *StorageSuite) TestCreateAndListGrants() {
	grant := &model.AchievementGrant{
		Username:      "alice",
		AchievementID: 1,
		GrantedAt:     time.Now(),
	}
	s.Require().NoError(s.storage.CreateGrant(s.ctx, grant))

	grants, err := s.storage.GrantsForPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().Len(grants, 1)
	s.Equal(int64(1), grants[0].AchievementID)
}

func (s *StorageSuite) TestCreateGrantDuplicate() {
	grant := &model.AchievementGrant{Username: "alice", AchievementID: 1}
	s.Require().NoError(s.storage.CreateGrant(s.ctx, grant))

	err := s.storage.CreateGrant(s.ctx, &model.AchievementGrant{Username: "alice", AchievementID: 1})
	s.ErrorIs(err, model.ErrAchievementGranted)
}

func (s *StorageSuite) TestGrantsForPlayerEmpty() {
	grants, err := s.storage.GrantsForPlayer(s.ctx, "nobody")
	s.Require().NoError(err)
	s.Empty(grants)
}
