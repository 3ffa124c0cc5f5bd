package prompts

import "strings"

var saboteurStrategies = []string{
	"选择一个描述中等可疑的平民，避免过于明显",
	"投票给描述最详细的平民，暗示其过度解释",
	"选择描述风格与众不同的平民进行投票",
	"投票给之前轮次表现突出的平民角色",
	"选择一个相对安全的目标，避免引起注意",
}

var saboteurDisguises = []string{
	"表现得像一个谨慎的平民",
	"模仿一个有些困惑但努力分析的平民",
	"装作一个直觉型的平民",
	"伪装成逻辑分析型的平民",
}

var saboteurRiskControls = []string{
	"保持低调，避免成为焦点",
	"适度参与讨论，不过分积极也不过分消极",
	"在投票理由中展现'平民思维'",
}

var civilianStrategies = []string{
	"重点关注描述过于模糊的角色",
	"重点关注描述与主流不符的角色",
	"重点关注描述过于详细可能在掩饰的角色",
	"重点关注描述用词奇怪的角色",
	"重点关注描述逻辑不通的角色",
	"重点关注描述过于简单的角色",
	"重点关注描述过于复杂的角色",
	"重点关注描述风格突兀的角色",
	"重点关注描述内容重复的角色",
	"重点关注描述角度独特的角色",
}

var civilianAngles = []string{
	"从语言习惯角度分析",
	"从描述深度角度判断",
	"从情感表达角度观察",
	"从逻辑连贯性角度思考",
	"从用词选择角度评估",
	"从表达方式角度考虑",
}

var civilianRiskPreferences = []string{
	"倾向于保守投票，选择最明显可疑的角色",
	"愿意冒险投票，可能选择不太明显的目标",
	"中等风险偏好，平衡考虑各种因素",
}

var civilianConfidence = []string{
	"对自己的判断很有信心",
	"对判断有些不确定，但会坚持选择",
	"感到有些困惑，但会尽力分析",
}

// traitBias maps personality keywords onto weights over civilianStrategies
type traitBias struct {
	keywords []string
	weights  []float64
}

var civilianBiases = []traitBias{
	{
		keywords: []string{"谨慎", "细心", "cautious", "careful"},
		weights:  []float64{2, 3, 2, 3, 3, 1, 1, 2, 2, 1},
	},
	{
		keywords: []string{"直觉", "冲动", "intuitive", "impulsive"},
		weights:  []float64{1, 3, 1, 2, 1, 2, 1, 3, 1, 3},
	},
	{
		keywords: []string{"理性", "逻辑", "rational", "logical"},
		weights:  []float64{1, 2, 3, 1, 3, 2, 3, 1, 3, 1},
	},
}

// strategyWeights returns the weights for the first bias whose keyword appears
// in personality, or nil for a uniform draw
func strategyWeights(personality string) []float64 {
	lower := strings.ToLower(personality)
	for _, bias := range civilianBiases {
		for _, kw := range bias.keywords {
			if strings.Contains(lower, kw) {
				return bias.weights
			}
		}
	}
	return nil
}
