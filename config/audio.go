package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundSwing
	SoundHit
	SoundHurt
	SoundHeal
	SoundDeath
	// Inventory sounds
	SoundPickup
	SoundSwap
	SoundBreak
	// Wave sounds
	SoundWaveStart
)

var soundNames = map[SoundID]string{
	SoundSwing:     "swing",
	SoundHit:       "hit",
	SoundHurt:      "hurt",
	SoundHeal:      "heal",
	SoundDeath:     "death",
	SoundPickup:    "pickup",
	SoundSwap:      "swap",
	SoundBreak:     "break",
	SoundWaveStart: "wave_start",
}

func (s SoundID) String() string {
	if name, ok := soundNames[s]; ok {
		return name
	}
	return "none"
}
