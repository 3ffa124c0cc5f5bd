package prompts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/undercover/internal/common/random"
	"github.com/KirkDiggler/undercover/internal/llm"
	"github.com/KirkDiggler/undercover/internal/models"
)

// VoteFormat is the reply shape every voting prompt asks for
const VoteFormat = "投票给：[角色名]，理由：[理由]"

// Config holds configuration for the composer
type Config struct {
	Random random.Source
}

// Composer builds the role-conditioned prompts of the game
type Composer struct {
	random random.Source
}

// New creates a new composer
func New(cfg *Config) (*Composer, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Random == nil {
		return nil, errors.New("random source cannot be nil")
	}

	return &Composer{
		random: cfg.Random,
	}, nil
}

// DescriptionPrompt asks a seat for one disguised description of its word
func (c *Composer) DescriptionPrompt(input *DescriptionPromptInput) []llm.Message {
	var context strings.Builder
	if len(input.SpokenThisRound) > 0 {
		context.WriteString("\n\n【本轮其他角色已发言】:\n")
		context.WriteString(renderLines(input.SpokenThisRound))
	}
	if history := renderHistory(input.PreviousRounds); history != "" {
		context.WriteString("\n\n【历史轮次参考】:")
		context.WriteString(history)
	}

	var system string
	if input.Role == models.RoleSaboteur {
		system = fmt.Sprintf(`%s

你是本局游戏的卧底，你拿到的词是：「%s」。
你不知道其他人的词是什么，只知道它可能是同类事物（如：同属"文具"、同属"食物"等）。

**重要约束**：
1. **绝对禁止**直接说出你的目标词「%s」或其任何变形
2. **绝对禁止**使用目标词的拼音、首字母、谐音
3. **绝对禁止**明确描述外观、颜色、质地等精确特征
4. **绝对禁止**明确说出类别名称

你的目标是：在维持角色性格的基础上，尽可能模糊描述你拿到的词，**不要暴露关键特征**，但要让别人觉得你和他们是同一类。

**参考策略**：
- 如果前面有人发言，要从**不同角度**描述，避免重复相同的表达方式
- 可以描述使用感受、使用情境、联想印象、童年记忆、情感体验
- 保持模糊性：用"那种感觉"、"某种体验"等模糊表达
- 情绪化表达：引发共鸣但不暴露具体信息
- 保持你的角色性格和语气习惯%s

**要求**：请直接说出你的描述，用1句自然的话语表达（35~50字），不要重复他人的角度，保持你的角色特色。
`, input.Instructions, input.TargetWord, input.TargetWord, context.String())
	} else {
		system = fmt.Sprintf(`%s

你是本局游戏的平民，你拿到的关键词是：「%s」。

**重要约束**：
1. **绝对禁止**直接说出目标词「%s」或其任何变形
2. **绝对禁止**使用目标词的拼音、首字母、谐音
3. **绝对禁止**明确描述外观、材质等过于明显的特征
4. **绝对禁止**暗示字数、读音、发音结构

你需要在不暴露关键词的前提下，以**角色性格风格**进行表达，帮助同阵营的人理解你指的是什么，同时迷惑卧底。

**参考策略**：
- 如果前面有人发言，要从**不同角度**描述，避免重复
- 情境化：在哪些时候会用到它，但要模糊表达
- 联想型：它让你想到什么东西或回忆，但不要太直接
- 抽象感受：它给你带来的情绪或氛围
- 功能暗示：用模糊的方式暗示用途，但不要太明显%s

**要求**：请直接说出你的描述，用1句符合角色性格的自然话语（35~50字），避免重复他人的表达方式。
`, input.Instructions, input.TargetWord, input.TargetWord, context.String())
	}

	return []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: "请开始你的描述。"},
	}
}

// VotePrompt asks a seat to vote. Each call draws fresh hints so seats of the
// same role do not vote in lockstep.
func (c *Composer) VotePrompt(input *VotePromptInput) *VotePrompt {
	descriptions := renderLines(input.Descriptions)
	targets := strings.Join(input.Targets, "、")

	out := &VotePrompt{}
	var system string

	if input.Role == models.RoleSaboteur {
		out.StrategyHint = random.Pick(c.random, saboteurStrategies)
		out.Angle = random.Pick(c.random, saboteurDisguises)
		out.Posture = random.Pick(c.random, saboteurRiskControls)

		system = fmt.Sprintf(`%s

你是本局游戏的卧底，你的目标词是「%s」。

现在是投票环节，你需要巧妙地引导投票，避免自己被淘汰。

本轮所有人的描述：
%s

可投票的角色：%s

**你的卧底策略**：%s
**你的伪装风格**：%s
**你的风险控制**：%s

**卧底投票要求**：
1. 绝对不能暴露自己的卧底身份
2. 投票理由要符合平民的思维逻辑
3. 避免投票过于明显或过于隐蔽
4. 保持角色性格的一致性
5. 可以适当误导其他玩家的判断
6. 在必要时可以牺牲一个平民来保护自己
7. 投票理由中不要包含你拿到的目标词「%s」

请选择一个角色进行投票，并简要说明理由（30字以内）。
格式：%s`, input.Instructions, input.OwnWord, descriptions, targets,
			out.StrategyHint, out.Angle, out.Posture, input.OwnWord, VoteFormat)
	} else {
		weights := strategyWeights(input.Personality)
		if weights != nil {
			out.StrategyHint = civilianStrategies[random.Weighted(c.random, weights)]
		} else {
			out.StrategyHint = random.Pick(c.random, civilianStrategies)
		}
		out.Angle = random.Pick(c.random, civilianAngles)
		out.Posture = random.Pick(c.random, civilianRiskPreferences) + "；" + random.Pick(c.random, civilianConfidence)

		system = fmt.Sprintf(`%s

你是本局游戏的平民，你的目标词是「%s」。

现在是投票环节，你需要分析所有人的描述，找出最可能是卧底的人。

本轮所有人的描述：
%s

可投票的角色：%s

**你的分析方式**：%s
**你的投票策略**：%s
**你的心态**：%s

**投票要求**：
1. 根据你的个人判断和上述策略进行独立分析
2. 每个平民的怀疑对象可能不同，这很正常
3. 结合你的角色性格和思维方式进行判断
4. 不要完全跟随他人的选择，保持独立思考
5. 可以适当考虑心理博弈和反向思维
6. 在不确定时，可以选择相对安全的投票策略
7. 投票理由中不要包含你拿到的目标词「%s」

请选择一个角色进行投票，并简要说明理由（30字以内）。
格式：%s`, input.Instructions, input.OwnWord, descriptions, targets,
			out.Angle, out.StrategyHint, out.Posture, input.OwnWord, VoteFormat)
	}

	out.Messages = []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: "请开始你的投票。"},
	}
	return out
}

// EliminationSpeechPrompt asks the eliminated seat for a short in-character outburst
func (c *Composer) EliminationSpeechPrompt(input *SpeechPromptInput) []llm.Message {
	emotion := "生气、委屈、愤怒"
	situation := "作为无辜平民却被误认为卧底而淘汰"
	style := "表达愤怒和委屈，强调自己的清白"
	if input.IsSaboteur {
		emotion = "不甘、愤怒、不服"
		situation = "卧底身份被识破，即将被淘汰"
		style = "表达不甘和愤怒，但要保持角色的基本人设特征"
	}

	var persona string
	if input.Instructions != "" {
		persona = input.Instructions + "\n\n"
	}

	prompt := fmt.Sprintf(`%s你是%s，性格特点：%s。

现在的情况：第%d轮，%s

请以%s的身份，用%s的情绪，说一段被淘汰时的话语。要求：
1. %s
2. 保持角色的性格特征和说话风格
3. 语言要生动有趣，符合动画风格
4. 长度控制在30-80字之间
5. 不要透露真实身份信息，不要说出「%s」或「%s」
6. 要有强烈的情绪色彩

直接输出角色的话语，不要加任何前缀或解释。
`, persona, input.Name, input.Personality, input.Round, situation,
		input.Name, emotion, style, input.PublicWord, input.UndercoverWord)

	return []llm.Message{
		{Role: llm.RoleUser, Content: prompt},
	}
}

var difficultyDescriptions = map[models.Difficulty]string{
	models.DifficultyEasy:   "简单（相似度高，容易混淆）",
	models.DifficultyMedium: "中等（有一定相似性但有明显区别）",
	models.DifficultyHard:   "困难（相似度较低，需要仔细思考）",
}

// WordPairPrompt asks the model for new library entries as a JSON array
func (c *Composer) WordPairPrompt(input *WordPairPromptInput) []llm.Message {
	desc, ok := difficultyDescriptions[input.Difficulty]
	if !ok {
		desc = difficultyDescriptions[models.DifficultyMedium]
	}

	prompt := fmt.Sprintf(`请为"谁是卧底"游戏生成%d对词汇对，主题是"%s"，难度为%s。

要求：
1. 每对词汇包含一个"平民词"和一个"卧底词"
2. 两个词要有一定相似性，但又有明显区别
3. 适合%s难度
4. 词汇要简洁明了，避免过于复杂
5. 请严格按照以下JSON格式返回，不要添加任何其他内容：

[
  {"public_word": "平民词1", "undercover_word": "卧底词1"},
  {"public_word": "平民词2", "undercover_word": "卧底词2"}
]

请直接返回JSON数组，不要包含任何解释或其他文字。`, input.Count, input.Theme, desc, input.Difficulty)

	return []llm.Message{
		{Role: llm.RoleUser, Content: prompt},
	}
}

func renderLines(lines []Line) string {
	rendered := make([]string, 0, len(lines))
	for _, l := range lines {
		rendered = append(rendered, fmt.Sprintf("%s: %s", l.SeatName, l.Text))
	}
	return strings.Join(rendered, "\n")
}

func renderHistory(rounds []RoundLines) string {
	var b strings.Builder
	for _, r := range rounds {
		if len(r.Lines) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n第%d轮描述:\n%s", r.Round, renderLines(r.Lines))
	}
	return b.String()
}
