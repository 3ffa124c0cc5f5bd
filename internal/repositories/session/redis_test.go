package session

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/undercover/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		FinishedTTL: time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newSession(id string) *models.GameSession {
	return &models.GameSession{
		ID: id,
		Seats: []*models.Seat{
			{PersonaID: "p0", Name: "猪猪侠", Personality: "勇敢、正义、幽默"},
			{PersonaID: "p1", Name: "吉伊", Personality: "敏感、胆小、善良"},
			{PersonaID: "p2", Name: "小八", Personality: "搞笑、机灵、温和"},
		},
		PublicWord:     "玻璃杯",
		UndercoverWord: "水杯",
		Difficulty:     models.DifficultyEasy,
		SaboteurSeat:   1,
		CurrentRound:   1,
		MaxRounds:      3,
		Eliminated:     []int{},
		Status:         models.SessionStatusInProgress,
		Phase:          models.PhaseDescribing,
		CreatedAt:      s.testNow,
		UpdatedAt:      s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetSession() {
	session := s.newSession("session-1")
	session.SetDescription(1, 0, &models.DescriptionEntry{Round: 1, SeatIndex: 0, SeatName: "猪猪侠", Text: "每天早上都离不开它"})

	err := s.repo.CreateSession(context.Background(), &CreateSessionInput{Session: session})
	s.Require().NoError(err)
	s.Equal(int64(1), session.Version)

	got, err := s.repo.GetSession(context.Background(), &GetSessionInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.Equal("session-1", got.ID)
	s.Equal(1, got.SaboteurSeat)
	s.Len(got.Seats, 3)
	s.Equal("吉伊", got.Seats[1].Name)
	s.Equal("每天早上都离不开它", got.DescriptionLog[0][0].Text)
	s.Equal(int64(1), got.Version)
	s.Equal(s.testNow.Unix(), got.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestCreateSessionRefusesDuplicate() {
	s.Require().NoError(s.repo.CreateSession(context.Background(), &CreateSessionInput{Session: s.newSession("dup")}))

	err := s.repo.CreateSession(context.Background(), &CreateSessionInput{Session: s.newSession("dup")})
	s.ErrorIs(err, ErrSessionExists)
}

func (s *RedisRepositoryTestSuite) TestGetSessionNotFound() {
	_, err := s.repo.GetSession(context.Background(), &GetSessionInput{SessionID: "missing"})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestUpdateSessionBumpsVersion() {
	session := s.newSession("session-2")
	s.Require().NoError(s.repo.CreateSession(context.Background(), &CreateSessionInput{Session: session}))

	session.Eliminated = append(session.Eliminated, 2)
	session.CurrentRound = 2
	s.Require().NoError(s.repo.UpdateSession(context.Background(), &UpdateSessionInput{Session: session}))
	s.Equal(int64(2), session.Version)

	got, err := s.repo.GetSession(context.Background(), &GetSessionInput{SessionID: "session-2"})
	s.Require().NoError(err)
	s.Equal([]int{2}, got.Eliminated)
	s.Equal(2, got.CurrentRound)
	s.Equal(int64(2), got.Version)
}

func (s *RedisRepositoryTestSuite) TestUpdateSessionDetectsStaleWriter() {
	session := s.newSession("session-3")
	s.Require().NoError(s.repo.CreateSession(context.Background(), &CreateSessionInput{Session: session}))

	stale, err := s.repo.GetSession(context.Background(), &GetSessionInput{SessionID: "session-3"})
	s.Require().NoError(err)

	session.CurrentRound = 2
	s.Require().NoError(s.repo.UpdateSession(context.Background(), &UpdateSessionInput{Session: session}))

	stale.Eliminated = append(stale.Eliminated, 0)
	err = s.repo.UpdateSession(context.Background(), &UpdateSessionInput{Session: stale})
	s.ErrorIs(err, ErrVersionConflict)
	s.Equal(int64(1), stale.Version)

	got, err := s.repo.GetSession(context.Background(), &GetSessionInput{SessionID: "session-3"})
	s.Require().NoError(err)
	s.Empty(got.Eliminated)
}

func (s *RedisRepositoryTestSuite) TestUpdateSessionNotFound() {
	err := s.repo.UpdateSession(context.Background(), &UpdateSessionInput{Session: s.newSession("ghost")})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestFinishedSessionsLeaveActiveIndex() {
	active := s.newSession("active")
	done := s.newSession("done")
	s.Require().NoError(s.repo.CreateSession(context.Background(), &CreateSessionInput{Session: active}))
	s.Require().NoError(s.repo.CreateSession(context.Background(), &CreateSessionInput{Session: done}))

	done.Status = models.SessionStatusFinished
	done.Phase = models.PhaseFinished
	done.Winner = models.WinnerCivilians
	s.Require().NoError(s.repo.UpdateSession(context.Background(), &UpdateSessionInput{Session: done}))

	out, err := s.repo.ListActiveSessions(context.Background(), &ListActiveSessionsInput{})
	s.Require().NoError(err)
	s.ElementsMatch([]string{"active"}, out.SessionIDs)

	s.True(s.mr.TTL(sessionKey("done")) > 0)
	s.Equal(time.Duration(0), s.mr.TTL(sessionKey("active")))
}
