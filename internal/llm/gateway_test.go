package llm_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/undercover/internal/llm"
	"github.com/KirkDiggler/undercover/internal/llm/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GatewayTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockProvider *mocks.MockProvider
	gateway      *llm.Gateway
	ctx          context.Context
}

func (s *GatewayTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockProvider = mocks.NewMockProvider(s.mockCtrl)
	s.ctx = context.Background()

	gw, err := llm.New(&llm.Config{
		Provider:    s.mockProvider,
		Model:       "qwen-plus",
		Temperature: 0.7,
		MaxTokens:   300,
		Timeout:     time.Second,
		Cache: &llm.CacheConfig{
			Size: 10,
			TTLs: map[llm.Category]time.Duration{
				llm.CategoryGame:    time.Minute,
				llm.CategoryDefault: 30 * time.Millisecond,
			},
		},
	})
	s.Require().NoError(err)
	s.gateway = gw
}

func (s *GatewayTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGatewayTestSuite(t *testing.T) {
	suite.Run(t, new(GatewayTestSuite))
}

func gameMessages() []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: "你是本局游戏的平民，你拿到的关键词是：「手机」。"},
		{Role: llm.RoleUser, Content: "请开始你的描述。"},
	}
}

func (s *GatewayTestSuite) TestGenerateCachesByContent() {
	s.mockProvider.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *llm.CompletionRequest) (string, error) {
			s.Equal("qwen-plus", req.Model)
			s.Equal(300, req.MaxTokens)
			s.Equal(0.7, req.Temperature)
			_, hasDeadline := ctx.Deadline()
			s.True(hasDeadline)
			return "  每天醒来第一眼就在找它  ", nil
		}).
		Times(1)

	first, err := s.gateway.Generate(s.ctx, &llm.GenerateInput{Messages: gameMessages()})
	s.Require().NoError(err)
	s.Equal("每天醒来第一眼就在找它", first.Text)
	s.Equal(llm.CategoryGame, first.Category)
	s.False(first.Cached)

	second, err := s.gateway.Generate(s.ctx, &llm.GenerateInput{Messages: gameMessages()})
	s.Require().NoError(err)
	s.Equal(first.Text, second.Text)
	s.True(second.Cached)
}

func (s *GatewayTestSuite) TestDifferentModelMissesCache() {
	s.mockProvider.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("一", nil)
	s.mockProvider.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("二", nil)

	a, err := s.gateway.Generate(s.ctx, &llm.GenerateInput{Messages: gameMessages()})
	s.Require().NoError(err)
	b, err := s.gateway.Generate(s.ctx, &llm.GenerateInput{Messages: gameMessages(), Model: "qwen-max"})
	s.Require().NoError(err)

	s.Equal("一", a.Text)
	s.Equal("二", b.Text)
}

func (s *GatewayTestSuite) TestCacheEntriesExpire() {
	msgs := []llm.Message{{Role: llm.RoleUser, Content: "hello"}}
	s.mockProvider.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("hi", nil).Times(2)

	out, err := s.gateway.Generate(s.ctx, &llm.GenerateInput{Messages: msgs})
	s.Require().NoError(err)
	s.Equal(llm.CategoryDefault, out.Category)

	time.Sleep(80 * time.Millisecond)

	out, err = s.gateway.Generate(s.ctx, &llm.GenerateInput{Messages: msgs})
	s.Require().NoError(err)
	s.False(out.Cached)
}

func (s *GatewayTestSuite) TestProviderErrorIsGenerationFailure() {
	s.mockProvider.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", errors.New("timeout"))

	_, err := s.gateway.Generate(s.ctx, &llm.GenerateInput{Messages: gameMessages()})
	s.ErrorIs(err, llm.ErrGenerationFailed)
}

func (s *GatewayTestSuite) TestBoilerplateOnlyIsGenerationFailure() {
	s.mockProvider.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("  我的描述是：  ", nil)

	_, err := s.gateway.Generate(s.ctx, &llm.GenerateInput{Messages: gameMessages()})
	s.ErrorIs(err, llm.ErrGenerationFailed)
}

func (s *GatewayTestSuite) TestLeadInIsStripped() {
	s.mockProvider.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("我认为：它总在口袋里震动", nil)

	out, err := s.gateway.Generate(s.ctx, &llm.GenerateInput{Messages: gameMessages()})
	s.Require().NoError(err)
	s.Equal("它总在口袋里震动", out.Text)
}

func (s *GatewayTestSuite) TestFailuresAreNotCached() {
	s.mockProvider.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", nil)
	s.mockProvider.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("第二次成功", nil)

	_, err := s.gateway.Generate(s.ctx, &llm.GenerateInput{Messages: gameMessages()})
	s.Error(err)

	out, err := s.gateway.Generate(s.ctx, &llm.GenerateInput{Messages: gameMessages()})
	s.Require().NoError(err)
	s.Equal("第二次成功", out.Text)
}

func (s *GatewayTestSuite) TestNoMessages() {
	_, err := s.gateway.Generate(s.ctx, &llm.GenerateInput{})
	s.ErrorIs(err, llm.ErrGenerationFailed)
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := llm.New(nil)
	if !errors.Is(err, llm.ErrNilConfig) {
		t.Fatalf("expected ErrNilConfig, got %v", err)
	}
	_, err = llm.New(&llm.Config{})
	if !errors.Is(err, llm.ErrNilProvider) {
		t.Fatalf("expected ErrNilProvider, got %v", err)
	}
}

func (s *GatewayTestSuite) TestSkipCacheRefreshesEntry() {
	gomock.InOrder(
		s.mockProvider.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("太长的回答", nil),
		s.mockProvider.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("每天醒来第一眼就在找它", nil),
	)

	first, err := s.gateway.Generate(s.ctx, &llm.GenerateInput{Messages: gameMessages()})
	s.Require().NoError(err)
	s.Equal("太长的回答", first.Text)

	retry, err := s.gateway.Generate(s.ctx, &llm.GenerateInput{Messages: gameMessages(), SkipCache: true})
	s.Require().NoError(err)
	s.False(retry.Cached)
	s.Equal("每天醒来第一眼就在找它", retry.Text)

	cached, err := s.gateway.Generate(s.ctx, &llm.GenerateInput{Messages: gameMessages()})
	s.Require().NoError(err)
	s.True(cached.Cached)
	s.Equal("每天醒来第一眼就在找它", cached.Text)
}
