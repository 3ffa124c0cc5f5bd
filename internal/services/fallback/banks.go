package fallback

var saboteurDescriptions = []string{
	"这个东西让我想起了一些特别的回忆，虽然不太确定具体是什么。",
	"嗯...这个概念有点模糊，但感觉和大家说的有些相似之处。",
	"我觉得这个东西挺有意思的，不过可能理解角度不太一样。",
	"这让我联想到了某种熟悉的感觉，但又说不太清楚。",
}

var civilianDescriptions = []string{
	"这个东西在生活中很常见，大家应该都很熟悉。",
	"我觉得这个概念很容易理解，应该没什么争议。",
	"这是个很实用的东西，经常会用到。",
	"大家对这个应该都有共同的认知吧。",
}

var saboteurVoteReasons = []string{
	"感觉这个人的描述有些奇怪",
	"直觉告诉我应该投这个人",
	"这个人的表达方式让我怀疑",
	"综合考虑后选择这个人",
}

var civilianVoteReasons = []string{
	"这个人的描述和我理解的不太一样",
	"感觉这个人可能是卧底",
	"这个人的表达有些可疑",
	"基于分析选择投票给这个人",
}

// speech templates take the seat name
var saboteurSpeeches = []string{
	"可恶！我%s怎么可能是卧底！你们这些家伙真是太过分了！",
	"不！这不可能！我%s明明隐藏得这么好...等等，我说错什么了吗？",
	"哼！%s败给你们这群平民，真是不甘心啊！",
	"可恶可恶！%s的完美计划就这样被识破了！",
}

var civilianSpeeches = []string{
	"什么？！我%s明明是无辜的平民啊！你们这群笨蛋！",
	"太过分了！%s这么善良的人怎么可能是卧底！",
	"我不服！%s绝对不是卧底！你们都看错人了！",
	"冤枉啊！%s比窦娥还冤！我真的是平民啊！",
}

const (
	minimalSaboteurSpeech = "可恶！%s不甘心就这样被淘汰！"
	minimalCivilianSpeech = "我%s是无辜的！你们都搞错了！"
)
