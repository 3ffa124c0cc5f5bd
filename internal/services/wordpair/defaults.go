package wordpair

import "github.com/KirkDiggler/undercover/internal/models"

// defaultWordPairs is the library installed by SeedDefaults
var defaultWordPairs = []*AddWordPairInput{
	{PublicWord: "玻璃杯", UndercoverWord: "水杯", Difficulty: models.DifficultyEasy},
	{PublicWord: "火锅", UndercoverWord: "汤锅", Difficulty: models.DifficultyMedium},
	{PublicWord: "铅笔", UndercoverWord: "毛笔", Difficulty: models.DifficultyHard},
	{PublicWord: "飞机", UndercoverWord: "火箭", Difficulty: models.DifficultyMedium},
	{PublicWord: "魔法", UndercoverWord: "科技", Difficulty: models.DifficultyHard},
	{PublicWord: "猫", UndercoverWord: "狮子", Difficulty: models.DifficultyHard},
	{PublicWord: "手机", UndercoverWord: "电话", Difficulty: models.DifficultyEasy},
	{PublicWord: "汽车", UndercoverWord: "自行车", Difficulty: models.DifficultyMedium},
	{PublicWord: "医生", UndercoverWord: "护士", Difficulty: models.DifficultyMedium},
	{PublicWord: "老师", UndercoverWord: "学生", Difficulty: models.DifficultyEasy},
}
