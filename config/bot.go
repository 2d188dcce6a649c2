package config

// BotDifficulty affects reaction time and how early the autopilot jumps
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

// BotDifficultyConfig holds tuning values for the autopilot at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay   int     // Ticks between spotting an obstacle and jumping
	TriggerDistance float64 // Gap (px) between player and obstacle that triggers a jump
}

// BotConfigData holds all autopilot configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds autopilot configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay:   12, // 0.2 second reaction time at 60fps
				TriggerDistance: 90.0,
			},
			BotDifficultyNormal: {
				ReactionDelay:   4,
				TriggerDistance: 70.0,
			},
			BotDifficultyHard: {
				ReactionDelay:   0, // Jumps on the tick it sees the gap
				TriggerDistance: 60.0,
			},
		},
	}
}

// ParseBotDifficulty maps a CLI name to a difficulty.
func ParseBotDifficulty(name string) (BotDifficulty, bool) {
	switch name {
	case "easy":
		return BotDifficultyEasy, true
	case "normal":
		return BotDifficultyNormal, true
	case "hard":
		return BotDifficultyHard, true
	}
	return BotDifficultyNormal, false
}
