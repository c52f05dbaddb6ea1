package config

// BotDifficulty affects reaction time and decision quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay    int     // Frames between decisions
	AttackRange      float64 // Distance to start attacking
	ChaseRange       float64 // Distance to start chasing
	RetreatThreshold float64 // Health fraction below which healing is tried
	LootRange        float64 // Distance an unarmed bot will walk for a pickup
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
	Default      BotDifficulty
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Default: BotDifficultyNormal,
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay:    30, // 0.5 second reaction time
				AttackRange:      1.2,
				ChaseRange:       10.0,
				RetreatThreshold: 0.2,
				LootRange:        8.0,
			},
			BotDifficultyNormal: {
				ReactionDelay:    15,
				AttackRange:      1.4,
				ChaseRange:       14.0,
				RetreatThreshold: 0.3,
				LootRange:        14.0,
			},
			BotDifficultyHard: {
				ReactionDelay:    5, // Near-instant reaction
				AttackRange:      1.6,
				ChaseRange:       20.0,
				RetreatThreshold: 0.15,
				LootRange:        20.0,
			},
		},
	}
}
