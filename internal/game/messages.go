package game

// User-facing messages. The game speaks Russian; the mechanics are
// language-agnostic.
const (
	// MsgNoSession is returned for any game message without an active session.
	MsgNoSession = "Сначала начните игру, используя команду /startgame."

	// MsgLoadFailed is returned when a target cannot be loaded at game start.
	MsgLoadFailed = "Не удалось загрузить игрока. Попробуйте позже."

	// MsgGameStarted announces a new game; takes the question budget.
	MsgGameStarted = "Игра началась! Задавайте вопросы, на которые я буду отвечать 'да' или 'нет'. Попробуйте угадать, кто это!\nУ вас %d вопросов и %d попыток угадать через /guess."

	// MsgExhausted is the terminal message for a used-up question budget;
	// takes the target name.
	MsgExhausted = "Вы исчерпали количество вопросов. Игрок был %s. Для начала новой игры используйте команду /startgame."

	// MsgCongratulations is the win message; takes the canonical target name.
	MsgCongratulations = "🎉 Поздравляю! Вы угадали: %s."

	// MsgWrongGuess is the simple-mode miss message (no counters change).
	MsgWrongGuess = "Неверно, попробуйте ещё раз!"

	// MsgWrongGuessAttempts is the strict-mode miss message; takes the
	// remaining attempt count.
	MsgWrongGuessAttempts = "Неверно! Осталось попыток: %d."

	// MsgAttemptsExhausted is the terminal message for used-up guess
	// attempts; takes the target name.
	MsgAttemptsExhausted = "Попытки закончились. Игрок был %s. Для начала новой игры используйте команду /startgame."

	// MsgGuessUsage explains the /guess command.
	MsgGuessUsage = "Использование: /guess <имя игрока>"

	// MsgUnknown is the fallback for unclassified questions.
	MsgUnknown = "Я не знаю ответа на этот вопрос, попробуйте задать другой."

	// MsgAttributeUnavailable is used when the target record is missing the
	// attribute a question asks about.
	MsgAttributeUnavailable = "Информация об этом у меня отсутствует, попробуйте другой вопрос."

	// MsgProviderUnavailable is used when a data lookup fails mid-game.
	// The question is not counted and the session survives.
	MsgProviderUnavailable = "Сервис данных временно недоступен, попробуйте ещё раз чуть позже."

	// MsgAgeParseError is returned when an age question has no parseable number.
	MsgAgeParseError = "Не смог разобрать число в вопросе. Спросите, например: 'он старше 30?'"

	// MsgLeagueUnknown is returned when the club's country cannot be resolved.
	MsgLeagueUnknown = "Я не знаю, в какой лиге играет этот игрок."

	// MsgNoAchievements is the hint answer for a target without trophies.
	MsgNoAchievements = "У этого игрока нет известных достижений."

	// MsgInfo is the static help text for /info.
	MsgInfo = "Эта игра позволяет вам угадать футбольного игрока, задавая вопросы.\n" +
		"/startgame — начать новую игру\n" +
		"/guess <имя> — назвать игрока (ограниченное число попыток)\n" +
		"Вопрос 'это <имя>?' тоже считается догадкой и не тратит попытки.\n" +
		"Спрашивайте про позицию, трофеи, лигу, гражданство и возраст."
)
