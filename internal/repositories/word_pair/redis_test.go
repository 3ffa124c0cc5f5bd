package word_pair

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

func (s *RedisRepositoryTestSuite) add(id, public, undercover string, d models.Difficulty, offset time.Duration) error {
	return s.repo.AddWordPair(context.Background(), &AddWordPairInput{
		WordPair: &models.WordPair{
			ID:             id,
			PublicWord:     public,
			UndercoverWord: undercover,
			Difficulty:     d,
			CreatedAt:      s.testNow.Add(offset),
		},
	})
}

func (s *RedisRepositoryTestSuite) TestAddAndGetWordPair() {
	s.Require().NoError(s.add("w1", "火锅", "汤锅", models.DifficultyMedium, 0))

	got, err := s.repo.GetWordPair(context.Background(), &GetWordPairInput{WordPairID: "w1"})
	s.Require().NoError(err)
	s.Equal("火锅", got.PublicWord)
	s.Equal("汤锅", got.UndercoverWord)
	s.Equal(models.DifficultyMedium, got.Difficulty)
}

func (s *RedisRepositoryTestSuite) TestAddDuplicatePair() {
	s.Require().NoError(s.add("w1", "火锅", "汤锅", models.DifficultyMedium, 0))

	err := s.add("w2", "火锅", "汤锅", models.DifficultyHard, 0)
	s.ErrorIs(err, ErrWordPairExists)

	_, err = s.repo.GetWordPair(context.Background(), &GetWordPairInput{WordPairID: "w2"})
	s.ErrorIs(err, ErrWordPairNotFound)

	// reversed pair is a different pair
	s.NoError(s.add("w3", "汤锅", "火锅", models.DifficultyMedium, 0))
}

func (s *RedisRepositoryTestSuite) TestListByDifficulty() {
	s.Require().NoError(s.add("e1", "手机", "电话", models.DifficultyEasy, time.Second))
	s.Require().NoError(s.add("e2", "老师", "学生", models.DifficultyEasy, 0))
	s.Require().NoError(s.add("h1", "铅笔", "毛笔", models.DifficultyHard, 0))

	easy, err := s.repo.ListWordPairs(context.Background(), &ListWordPairsInput{Difficulty: models.DifficultyEasy})
	s.Require().NoError(err)
	s.Require().Len(easy.WordPairs, 2)
	s.Equal("e2", easy.WordPairs[0].ID)
	s.Equal("e1", easy.WordPairs[1].ID)

	medium, err := s.repo.ListWordPairs(context.Background(), &ListWordPairsInput{Difficulty: models.DifficultyMedium})
	s.Require().NoError(err)
	s.Empty(medium.WordPairs)

	all, err := s.repo.ListWordPairs(context.Background(), &ListWordPairsInput{})
	s.Require().NoError(err)
	s.Len(all.WordPairs, 3)
}

func (s *RedisRepositoryTestSuite) TestDeleteWordPair() {
	s.Require().NoError(s.add("w1", "猫", "狮子", models.DifficultyHard, 0))

	s.Require().NoError(s.repo.DeleteWordPair(context.Background(), &DeleteWordPairInput{WordPairID: "w1"}))

	all, err := s.repo.ListWordPairs(context.Background(), &ListWordPairsInput{})
	s.Require().NoError(err)
	s.Empty(all.WordPairs)

	// the lookup slot is released too
	s.NoError(s.add("w2", "猫", "狮子", models.DifficultyHard, 0))

	err = s.repo.DeleteWordPair(context.Background(), &DeleteWordPairInput{WordPairID: "missing"})
	s.ErrorIs(err, ErrWordPairNotFound)
}
