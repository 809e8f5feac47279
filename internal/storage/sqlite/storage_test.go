package sqlite

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
	store, err := Open(":memory:")
	s.Require().NoError(err)
	s.storage = store
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
}

// Player tests

func (s *StorageSuite) TestCreateAndGetPlayer() {
	player := &model.Player{
		Username:     "alice",
		Name:         "Alice",
		Surname:      "Miner",
		Gender:       model.GenderFemale,
		BirthDate:    "1995-04-02",
		Age:          30,
		Email:        "alice@example.com",
		PasswordHash: "hash123",
		IconID:       3,
		CreatedAt:    time.Now(),
	}

	err := s.storage.CreatePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(player.Username, retrieved.Username)
	s.Equal(player.Surname, retrieved.Surname)
	s.Equal(player.Gender, retrieved.Gender)
	s.Equal(player.IconID, retrieved.IconID)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestCreatePlayerDuplicateUsername() {
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, &model.Player{Username: "alice", Name: "Alice"}))

	err := s.storage.CreatePlayer(s.ctx, &model.Player{Username: "alice", Name: "Other"})
	s.ErrorIs(err, model.ErrUsernameExists)
}

// Match tests

func (s *StorageSuite) TestCreateAndGetMatch() {
	match := &model.Match{
		ID:         "ABC123",
		Status:     model.MatchStatusStarted,
		Visibility: model.VisibilityPrivate,
		PassHash:   "passhash",
		CreatedAt:  time.Now(),
	}

	err := s.storage.CreateMatch(s.ctx, match)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetMatch(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.Equal(match.ID, retrieved.ID)
	s.Equal(model.VisibilityPrivate, retrieved.Visibility)
	s.Equal("passhash", retrieved.PassHash)
}

func (s *StorageSuite) TestGetMatchNotFound() {
	_, err := s.storage.GetMatch(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *StorageSuite) TestCreateMatchDuplicateID() {
	s.Require().NoError(s.storage.CreateMatch(s.ctx, &model.Match{ID: "ABC123"}))

	err := s.storage.CreateMatch(s.ctx, &model.Match{ID: "ABC123"})
	s.ErrorIs(err, model.ErrMatchExists)
}

func (s *StorageSuite) TestUpdateMatchRoundTripsParticipants() {
	s.Require().NoError(s.storage.CreateMatch(s.ctx, &model.Match{ID: "ABC123", Status: model.MatchStatusStarted}))

	_, err := s.storage.UpdateMatch(s.ctx, "ABC123", func(m *model.Match) error {
		p := model.Participant{Username: "alice", Team: model.Team1, JoinedAt: time.Now()}
		p.SetRole(1, model.RoleManager)
		m.Participants = append(m.Participants, p)
		return nil
	})
	s.Require().NoError(err)

	retrieved, err := s.storage.GetMatch(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.Require().Len(retrieved.Participants, 1)
	s.Equal(model.Username("alice"), retrieved.Participants[0].Username)
	s.Equal(model.RoleManager, retrieved.Participants[0].Roles[0])
}

func (s *StorageSuite) TestUpdateMatchPreservesJoinOrder() {
	s.Require().NoError(s.storage.CreateMatch(s.ctx, &model.Match{ID: "ABC123"}))

	for _, name := range []model.Username{"carol", "alice", "bob"} {
		name := name
		_, err := s.storage.UpdateMatch(s.ctx, "ABC123", func(m *model.Match) error {
			m.Participants = append(m.Participants, model.Participant{Username: name, Team: model.Team1})
			return nil
		})
		s.Require().NoError(err)
	}

	retrieved, err := s.storage.GetMatch(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.Require().Len(retrieved.Participants, 3)
	s.Equal(model.Username("carol"), retrieved.Participants[0].Username)
	s.Equal(model.Username("alice"), retrieved.Participants[1].Username)
	s.Equal(model.Username("bob"), retrieved.Participants[2].Username)
}

func (s *StorageSuite) TestUpdateMatchErrorLeavesMatchUnchanged() {
	s.Require().NoError(s.storage.CreateMatch(s.ctx, &model.Match{ID: "ABC123"}))

	_, err := s.storage.UpdateMatch(s.ctx, "ABC123", func(m *model.Match) error {
		m.Participants = append(m.Participants, model.Participant{Username: "alice"})
		return model.ErrMatchFull
	})
	s.ErrorIs(err, model.ErrMatchFull)

	retrieved, err := s.storage.GetMatch(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.Empty(retrieved.Participants)
}

func (s *StorageSuite) TestMatchesForPlayer() {
	for _, id := range []model.MatchID{"AAA111", "BBB222"} {
		s.Require().NoError(s.storage.CreateMatch(s.ctx, &model.Match{ID: id}))
	}

	_, err := s.storage.UpdateMatch(s.ctx, "BBB222", func(m *model.Match) error {
		m.Participants = append(m.Participants, model.Participant{Username: "alice", Team: model.Team2})
		return nil
	})
	s.Require().NoError(err)

	matches, err := s.storage.MatchesForPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().Len(matches, 1)
	s.Equal(model.MatchID("BBB222"), matches[0].ID)
}

// Catalog tests

func (s *StorageSuite) TestIconRoundTrip() {
	s.Require().NoError(s.storage.SaveIcon(s.ctx, &model.Icon{ID: 1, Name: "pickaxe"}))

	retrieved, err := s.storage.GetIcon(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("pickaxe", retrieved.Name)

	icons, err := s.storage.ListIcons(s.ctx)
	s.Require().NoError(err)
	s.Len(icons, 1)
}

func (s *StorageSuite) TestSaveIconUpsert() {
	s.Require().NoError(s.storage.SaveIcon(s.ctx, &model.Icon{ID: 1, Name: "pickaxe"}))
	s.Require().NoError(s.storage.SaveIcon(s.ctx, &model.Icon{ID: 1, Name: "golden pickaxe"}))

	retrieved, err := s.storage.GetIcon(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("golden pickaxe", retrieved.Name)
}

func (s *StorageSuite) TestAchievementRoundTrip() {
	s.Require().NoError(s.storage.SaveAchievement(s.ctx, &model.Achievement{ID: 1, Name: "First Blood", Description: "Win your first match"}))

	retrieved, err := s.storage.GetAchievement(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("First Blood", retrieved.Name)

	_, err = s.storage.GetAchievement(s.ctx, 42)
	s.ErrorIs(err, model.ErrAchievementNotFound)
}

// Grant tests

func (s *StorageSuite) TestGrantRoundTrip() {
	s.Require().NoError(s.storage.CreateGrant(s.ctx, &model.AchievementGrant{
		Username:      "alice",
		AchievementID: 1,
		GrantedAt:     time.Now(),
	}))

	grants, err := s.storage.GrantsForPlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().Len(grants, 1)
	s.Equal(int64(1), grants[0].AchievementID)
}

func (s *StorageSuite) TestCreateGrantDuplicate() {
	s.Require().NoError(s.storage.CreateGrant(s.ctx, &model.AchievementGrant{Username: "alice", AchievementID: 1}))

	err := s.storage.CreateGrant(s.ctx, &model.AchievementGrant{Username: "alice", AchievementID: 1})
	s.ErrorIs(err, model.ErrAchievementGranted)
}
