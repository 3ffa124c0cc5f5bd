package prompts

import (
	"strings"
	"testing"

	"github.com/KirkDiggler/undercover/internal/common/random/mocks"
	"github.com/KirkDiggler/undercover/internal/llm"
	"github.com/KirkDiggler/undercover/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ComposerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	random   *mocks.MockSource
	composer *Composer
}

func (s *ComposerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.random = mocks.NewMockSource(s.ctrl)

	composer, err := New(&Config{Random: s.random})
	s.Require().NoError(err)
	s.composer = composer
}

func (s *ComposerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestComposerTestSuite(t *testing.T) {
	suite.Run(t, new(ComposerTestSuite))
}

func (s *ComposerTestSuite) TestDescriptionPromptCivilian() {
	msgs := s.composer.DescriptionPrompt(&DescriptionPromptInput{
		Instructions: "你是小八",
		Role:         models.RoleCivilian,
		TargetWord:   "火锅",
	})

	s.Require().Len(msgs, 2)
	s.Equal(llm.RoleSystem, msgs[0].Role)
	s.Contains(msgs[0].Content, "你是小八")
	s.Contains(msgs[0].Content, "平民")
	s.Contains(msgs[0].Content, "「火锅」")
	s.NotContains(msgs[0].Content, "本轮其他角色已发言")
	s.NotContains(msgs[0].Content, "历史轮次参考")
	s.Equal("请开始你的描述。", msgs[1].Content)
}

func (s *ComposerTestSuite) TestDescriptionPromptSaboteurWithContext() {
	msgs := s.composer.DescriptionPrompt(&DescriptionPromptInput{
		Role:       models.RoleSaboteur,
		TargetWord: "汤锅",
		SpokenThisRound: []Line{
			{SeatName: "吉伊", Text: "冬天最想和朋友围在一起"},
		},
		PreviousRounds: []RoundLines{
			{Round: 1, Lines: []Line{{SeatName: "小八", Text: "热气腾腾"}}},
			{Round: 2},
		},
	})

	system := msgs[0].Content
	s.Contains(system, "卧底")
	s.Contains(system, "「汤锅」")
	s.Contains(system, "【本轮其他角色已发言】")
	s.Contains(system, "吉伊: 冬天最想和朋友围在一起")
	s.Contains(system, "第1轮描述:\n小八: 热气腾腾")
	s.NotContains(system, "第2轮描述")
}

func (s *ComposerTestSuite) TestVotePromptCivilianShowsOnlyOwnWord() {
	s.random.EXPECT().Float64().Return(0.0).AnyTimes()
	s.random.EXPECT().Intn(gomock.Any()).Return(0).AnyTimes()

	out := s.composer.VotePrompt(&VotePromptInput{
		Personality: "搞笑、机灵、温和",
		Role:        models.RoleCivilian,
		OwnWord:     "火锅",
		Descriptions: []Line{
			{SeatName: "吉伊", Text: "一起吃很开心"},
			{SeatName: "乌萨奇", Text: "呀哈"},
		},
		Targets: []string{"吉伊", "乌萨奇"},
	})

	s.Require().Len(out.Messages, 2)
	system := out.Messages[0].Content
	s.Contains(system, "「火锅」")
	s.NotContains(system, "汤锅")
	s.Contains(system, "可投票的角色：吉伊、乌萨奇")
	s.Contains(system, "吉伊: 一起吃很开心\n乌萨奇: 呀哈")
	s.Contains(system, "格式："+VoteFormat)
	s.Equal("请开始你的投票。", out.Messages[1].Content)

	s.Equal(civilianStrategies[0], out.StrategyHint)
	s.Equal(civilianAngles[0], out.Angle)
	s.True(strings.HasPrefix(out.Posture, civilianRiskPreferences[0]))
}

func (s *ComposerTestSuite) TestVotePromptCivilianPersonalityBias() {
	// the cautious weights put 2 on index 0 and 3 on index 1 out of 20
	s.random.EXPECT().Float64().Return(0.15)
	s.random.EXPECT().Intn(gomock.Any()).Return(1).AnyTimes()

	out := s.composer.VotePrompt(&VotePromptInput{
		Personality: "谨慎、细心",
		Role:        models.RoleCivilian,
		OwnWord:     "铅笔",
		Targets:     []string{"小八"},
	})

	s.Equal(civilianStrategies[1], out.StrategyHint)
	s.Equal(civilianAngles[1], out.Angle)
}

func (s *ComposerTestSuite) TestVotePromptSaboteur() {
	gomock.InOrder(
		s.random.EXPECT().Intn(len(saboteurStrategies)).Return(2),
		s.random.EXPECT().Intn(len(saboteurDisguises)).Return(3),
		s.random.EXPECT().Intn(len(saboteurRiskControls)).Return(1),
	)

	out := s.composer.VotePrompt(&VotePromptInput{
		Role:    models.RoleSaboteur,
		OwnWord: "毛笔",
		Targets: []string{"小八", "吉伊"},
	})

	s.Equal(saboteurStrategies[2], out.StrategyHint)
	s.Equal(saboteurDisguises[3], out.Angle)
	s.Equal(saboteurRiskControls[1], out.Posture)

	system := out.Messages[0].Content
	s.Contains(system, "卧底")
	s.Contains(system, "「毛笔」")
	s.Contains(system, saboteurStrategies[2])
}

func (s *ComposerTestSuite) TestEliminationSpeechPrompt() {
	msgs := s.composer.EliminationSpeechPrompt(&SpeechPromptInput{
		Name:           "乌萨奇",
		Personality:    "疯狂、跳脱",
		IsSaboteur:     true,
		Round:          2,
		PublicWord:     "猫",
		UndercoverWord: "狮子",
	})

	s.Require().Len(msgs, 1)
	s.Equal(llm.RoleUser, msgs[0].Role)
	s.Contains(msgs[0].Content, "你是乌萨奇")
	s.Contains(msgs[0].Content, "第2轮")
	s.Contains(msgs[0].Content, "卧底身份被识破")
	s.Contains(msgs[0].Content, "不要说出「猫」或「狮子」")
	s.Contains(msgs[0].Content, "30-80字")
}

func (s *ComposerTestSuite) TestWordPairPrompt() {
	msgs := s.composer.WordPairPrompt(&WordPairPromptInput{
		Theme:      "动物",
		Difficulty: models.DifficultyHard,
		Count:      3,
	})

	s.Require().Len(msgs, 1)
	s.Contains(msgs[0].Content, "生成3对词汇对")
	s.Contains(msgs[0].Content, `主题是"动物"`)
	s.Contains(msgs[0].Content, "困难")
	s.Contains(msgs[0].Content, `"public_word"`)
}

func TestNewComposerRequiresRandom(t *testing.T) {
	_, err := New(nil)
	if err == nil {
		t.Fatal("expected error for nil config")
	}
	_, err = New(&Config{})
	if err == nil {
		t.Fatal("expected error for nil random source")
	}
}
