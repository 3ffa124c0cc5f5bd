package persona

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
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
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
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetPersona() {
	for _, p := range Defaults() {
		s.Require().NoError(s.repo.SavePersona(context.Background(), &SavePersonaInput{Persona: p}))
	}

	got, err := s.repo.GetPersona(context.Background(), &GetPersonaInput{PersonaID: "hachiware"})
	s.Require().NoError(err)
	s.Equal("小八", got.Name)
	s.Equal("搞笑、机灵、温和", got.Personality)
	s.Contains(got.Instructions, "气氛担当")
}

func (s *RedisRepositoryTestSuite) TestGetPersonaNotFound() {
	_, err := s.repo.GetPersona(context.Background(), &GetPersonaInput{PersonaID: "nobody"})
	s.ErrorIs(err, ErrPersonaNotFound)
}

func (s *RedisRepositoryTestSuite) TestSavePersonaValidates() {
	err := s.repo.SavePersona(context.Background(), &SavePersonaInput{Persona: &models.Persona{ID: "x"}})
	s.Error(err)

	err = s.repo.SavePersona(context.Background(), nil)
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestListPersonasOrdered() {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Require().NoError(s.repo.SavePersona(context.Background(), &SavePersonaInput{Persona: &models.Persona{ID: "b", Name: "B", CreatedAt: base.Add(time.Minute)}}))
	s.Require().NoError(s.repo.SavePersona(context.Background(), &SavePersonaInput{Persona: &models.Persona{ID: "a", Name: "A", CreatedAt: base}}))
	s.Require().NoError(s.repo.SavePersona(context.Background(), &SavePersonaInput{Persona: &models.Persona{ID: "c", Name: "C", CreatedAt: base}}))

	s.mr.Del(personaKeyPrefix + "c")

	out, err := s.repo.ListPersonas(context.Background(), &ListPersonasInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Personas, 2)
	s.Equal("a", out.Personas[0].ID)
	s.Equal("b", out.Personas[1].ID)
}

func (s *RedisRepositoryTestSuite) TestSeedDefaultsSkipsExisting() {
	custom := &models.Persona{ID: "usagi", Name: "乌萨奇", Instructions: "自定义"}
	s.Require().NoError(s.repo.SavePersona(context.Background(), &SavePersonaInput{Persona: custom}))

	added, err := SeedDefaults(context.Background(), s.repo)
	s.Require().NoError(err)
	s.Equal(len(Defaults())-1, added)

	got, err := s.repo.GetPersona(context.Background(), &GetPersonaInput{PersonaID: "usagi"})
	s.Require().NoError(err)
	s.Equal("自定义", got.Instructions)

	added, err = SeedDefaults(context.Background(), s.repo)
	s.Require().NoError(err)
	s.Equal(0, added)
}
