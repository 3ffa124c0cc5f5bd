package interpreter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seats = []Candidate{
	{SeatIndex: 0, Name: "猪猪侠"},
	{SeatIndex: 1, Name: "小八"},
	{SeatIndex: 2, Name: "吉伊"},
	{SeatIndex: 4, Name: "乌萨奇"},
}

func TestParseVoteRoundTrip(t *testing.T) {
	vote, err := ParseVote("投票给：小八，理由：描述太模糊", seats)
	require.NoError(t, err)
	assert.Equal(t, 1, vote.TargetSeat)
	assert.Equal(t, "小八", vote.TargetName)
	assert.Equal(t, "描述太模糊", vote.Justification)
}

func TestParseVotePatternCatalog(t *testing.T) {
	variants := []string{
		"投票给：小八，理由：描述太模糊",
		"投票给:小八，理由：描述太模糊",
		"投票给：[小八]，理由：描述太模糊",
		"投票：小八，理由：描述太模糊",
		"选择：小八。因为描述太模糊",
		"我投小八，他的描述太模糊",
		"思考之后，投小八一票！",
		"我觉得小八的描述很可疑",
	}

	for _, text := range variants {
		t.Run(text, func(t *testing.T) {
			vote, err := ParseVote(text, seats)
			require.NoError(t, err)
			assert.Equal(t, 1, vote.TargetSeat)
			assert.Equal(t, "小八", vote.TargetName)
		})
	}
}

func TestParseVoteResolution(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantSeat int
		wantErr  error
	}{
		{
			name:     "partial name resolves by containment",
			text:     "投票给：萨奇，理由：乱说",
			wantSeat: 4,
		},
		{
			name:     "decorated name resolves by containment",
			text:     "投票给：吉伊同学，理由：太紧张",
			wantSeat: 2,
		},
		{
			name:    "eliminated seat is not a candidate",
			text:    "投票给：小桃，理由：可疑",
			wantErr: ErrNoVoteTarget,
		},
		{
			name:    "no name at all",
			text:    "我不知道该选谁",
			wantErr: ErrNoVoteTarget,
		},
		{
			name:    "empty",
			text:    "   ",
			wantErr: ErrNoVoteTarget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vote, err := ParseVote(tt.text, seats)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, vote)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSeat, vote.TargetSeat)
		})
	}
}

func TestParseVoteWithoutReasonKeepsText(t *testing.T) {
	vote, err := ParseVote("我投吉伊", seats)
	require.NoError(t, err)
	assert.Equal(t, "我投吉伊", vote.Justification)
}

func TestCleanDescription(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{name: "plain", in: "  冬天最适合的东西  ", want: "冬天最适合的东西"},
		{name: "lead in", in: "我的描述是：冬天最适合的东西", want: "冬天最适合的东西"},
		{name: "quoted", in: `"冬天最适合的东西"`, want: "冬天最适合的东西"},
		{name: "double quoted", in: `"“冬天最适合的东西”"`, want: "冬天最适合的东西"},
		{name: "lead in and quotes", in: "描述：「冬天最适合的东西」", want: "冬天最适合的东西"},
		{name: "only boilerplate", in: "回答：", wantErr: ErrEmptyText},
		{name: "only quotes", in: `""`, wantErr: ErrEmptyText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CleanDescription(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCleanSpeech(t *testing.T) {
	got, err := CleanSpeech(`"可恶！我小八明明是无辜的平民啊！"`)
	require.NoError(t, err)
	assert.Equal(t, "可恶！我小八明明是无辜的平民啊！", got)

	_, err = CleanSpeech("可恶！")
	assert.ErrorIs(t, err, ErrSpeechLength)

	_, err = CleanSpeech(strings.Repeat("啊", MaxSpeechLength+1))
	assert.ErrorIs(t, err, ErrSpeechLength)

	_, err = CleanSpeech("")
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestValidSpeechCountsCharacters(t *testing.T) {
	assert.True(t, ValidSpeech(strings.Repeat("啊", MinSpeechLength)))
	assert.True(t, ValidSpeech(strings.Repeat("啊", MaxSpeechLength)))
	assert.False(t, ValidSpeech(strings.Repeat("啊", MinSpeechLength-1)))
}

func TestParseWordPairs(t *testing.T) {
	text := "```json\n" + `[
  {"public_word": " 猫 ", "undercover_word": "狮子"},
  {"public_word": "", "undercover_word": "老虎"},
  {"public_word": "苹果", "undercover_word": "苹果"},
  {"public_word": "牛奶", "undercover_word": "豆浆"}
]` + "\n```"

	pairs, err := ParseWordPairs(text)
	require.NoError(t, err)
	assert.Equal(t, []GeneratedPair{
		{PublicWord: "猫", UndercoverWord: "狮子"},
		{PublicWord: "牛奶", UndercoverWord: "豆浆"},
	}, pairs)
}

func TestParseWordPairsErrors(t *testing.T) {
	_, err := ParseWordPairs(`{"public_word": "猫"}`)
	assert.ErrorIs(t, err, ErrMalformedWordPairs)

	_, err = ParseWordPairs("这是一些词汇")
	assert.ErrorIs(t, err, ErrMalformedWordPairs)

	_, err = ParseWordPairs(`[{"public_word": "猫", "undercover_word": ""}]`)
	assert.ErrorIs(t, err, ErrNoValidWordPairs)
}
