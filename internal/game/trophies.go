package game

// Trophy describes one achievement the bot can answer questions about:
// the exact title used by the data provider, the question keywords that
// trigger it, and the answer phrasing.
type Trophy struct {
	// Title is the exact achievement title in provider records.
	Title string

	// Keywords trigger this trophy in a question. One- and two-letter
	// abbreviations only match as whole words.
	Keywords []string

	// YesVerb opens the positive answer, e.g. "Да, он выиграл Золотой мяч";
	// the count and season list are appended by the resolver.
	YesVerb string

	// NoText is the full negative answer.
	NoText string
}

// Trophies is the fixed set of achievements with dedicated question
// keywords, checked in order.
var Trophies = []Trophy{
	{
		Title:    "Winner Ballon d'Or",
		Keywords: []string{"золотой мяч", "золотого мяча"},
		YesVerb:  "Да, он выиграл Золотой мяч",
		NoText:   "Нет, он никогда не выигрывал Золотой мяч.",
	},
	{
		Title:    "The Best FIFA Men's Player",
		Keywords: []string{"лучший игрок fifa", "лучшим игроком fifa"},
		YesVerb:  "Да, он становился лучшим игроком FIFA",
		NoText:   "Нет, он никогда не становился лучшим игроком FIFA.",
	},
	{
		Title:    "Champions League winner",
		Keywords: []string{"лига чемпионов", "лигу чемпионов", "лиги чемпионов", "лиге чемпионов", "лч"},
		YesVerb:  "Да, он выигрывал Лигу чемпионов",
		NoText:   "Нет, он никогда не выигрывал Лигу чемпионов.",
	},
	{
		Title:    "World Cup winner",
		Keywords: []string{"чемпионат мира", "чемпионата мира", "чм"},
		YesVerb:  "Да, он выигрывал чемпионат мира",
		NoText:   "Нет, он никогда не выигрывал чемпионат мира.",
	},
	{
		Title:    "Golden Boot winner",
		Keywords: []string{"золотая бутса", "золотую бутсу", "золотой бутсы"},
		YesVerb:  "Да, он получал Золотую бутсу",
		NoText:   "Нет, он никогда не получал Золотую бутсу.",
	},
}
