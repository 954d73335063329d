package bot

import "strings"

// DefaultDepth is used when neither a depth nor a known difficulty is given.
const DefaultDepth = 6

var difficultyDepths = map[string]int{
	"easy":   2,
	"medium": 4,
	"hard":   7,
}

var BotNames = map[string]string{
	"easy":   "Alice",
	"medium": "Bob",
	"hard":   "Charles",
}

// DepthForDifficulty maps a difficulty name onto a search depth, falling back
// to fallback for unknown names.
func DepthForDifficulty(difficulty string, fallback int) int {
	if depth, ok := difficultyDepths[strings.ToLower(difficulty)]; ok {
		return depth
	}
	return fallback
}

func GetBotName(difficulty string) string {
	if name, ok := BotNames[strings.ToLower(difficulty)]; ok {
		return name
	}
	return "BOT"
}

// IsKnownDifficulty reports whether difficulty names one of the presets.
func IsKnownDifficulty(difficulty string) bool {
	_, ok := difficultyDepths[strings.ToLower(difficulty)]
	return ok
}
