package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/minewars/sessiontrack/internal/dependencies/mocks"
	"github.com/minewars/sessiontrack/internal/model"
	"github.com/minewars/sessiontrack/internal/services/catalog"
	"github.com/minewars/sessiontrack/internal/services/match"
	"github.com/minewars/sessiontrack/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage         *memory.Storage
	clock           *mocks.MockClock
	matchController *match.Controller
	catalogService  *catalog.Service
	service         *Service
	ctx             context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.matchController = match.NewController(s.storage, s.clock, mocks.NewMockRandom())
	s.catalogService = catalog.New(s.storage, s.clock)
	s.service = New(s.storage, s.catalogService)
	s.ctx = context.Background()

	err := s.catalogService.Load(s.ctx, catalog.File{
		Achievements: []*model.Achievement{
			{ID: 1, Name: "First Blood"},
		},
	})
	s.Require().NoError(err)
}

func (s *ServiceSuite) createPlayer(username string) {
	err := s.storage.CreatePlayer(s.ctx, &model.Player{
		Username:  model.Username(username),
		Name:      username,
		CreatedAt: s.clock.Now(),
	})
	s.Require().NoError(err)
}

func (s *ServiceSuite) playMatch(id model.MatchID, winner model.Team, team1 []string, team2 []string) {
	_, err := s.matchController.CreateMatch(s.ctx, id, "")
	s.Require().NoError(err)

	for _, name := range team1 {
		_, err := s.matchController.AddParticipant(s.ctx, id, model.Username(name), model.Team1, "")
		s.Require().NoError(err)
	}
	for _, name := range team2 {
		_, err := s.matchController.AddParticipant(s.ctx, id, model.Username(name), model.Team2, "")
		s.Require().NoError(err)
	}

	_, err = s.matchController.EndMatch(s.ctx, id, winner, model.ResultWin)
	s.Require().NoError(err)
}

func (s *ServiceSuite) TestPlayerStatsCountsOutcomes() {
	s.createPlayer("alice")
	s.createPlayer("bob")

	s.playMatch("MATCH1", model.Team1, []string{"alice"}, []string{"bob"})
	s.playMatch("MATCH2", model.Team2, []string{"alice"}, []string{"bob"})
	s.playMatch("MATCH3", model.Team1, []string{"alice"}, []string{"bob"})

	stats, err := s.service.PlayerStats(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(2, stats.Wins)
	s.Equal(1, stats.Losses)

	stats, err = s.service.PlayerStats(s.ctx, "bob")
	s.Require().NoError(err)
	s.Equal(1, stats.Wins)
	s.Equal(2, stats.Losses)
}

func (s *ServiceSuite) TestPlayerStatsIgnoresUnresolvedMatches() {
	s.createPlayer("alice")

	_, err := s.matchController.CreateMatch(s.ctx, "OPEN", "")
	s.Require().NoError(err)
	_, err = s.matchController.AddParticipant(s.ctx, "OPEN", "alice", model.Team1, "")
	s.Require().NoError(err)

	stats, err := s.service.PlayerStats(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(0, stats.Wins)
	s.Equal(0, stats.Losses)
}

func (s *ServiceSuite) TestPlayerStatsIncludesAchievements() {
	s.createPlayer("alice")

	_, err := s.catalogService.GrantAchievement(s.ctx, "alice", 1)
	s.Require().NoError(err)

	stats, err := s.service.PlayerStats(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().Len(stats.Achievements, 1)
	s.Equal("First Blood", stats.Achievements[0].Name)
}

func (s *ServiceSuite) TestPlayerStatsNoHistory() {
	s.createPlayer("alice")

	stats, err := s.service.PlayerStats(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.Username("alice"), stats.Username)
	s.Empty(stats.Achievements)
	s.Equal(0, stats.Wins)
}

func (s *ServiceSuite) TestPlayerStatsUnknownPlayer() {
	_, err := s.service.PlayerStats(s.ctx, "ghost")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}
