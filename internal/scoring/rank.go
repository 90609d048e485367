package scoring

// Rank classifies a final score into a display tier.
type Rank string

const (
	RankCadet       Rank = "cadet"
	RankCaptain     Rank = "captain"
	RankGrandmaster Rank = "grandmaster"
)

// RankForScore maps a final score to its rank tier.
// Below 50 is Cadet, 50 through 80 inclusive is Captain,
// above 80 is Grandmaster.
func RankForScore(score int) Rank {
	switch {
	case score < 50:
		return RankCadet
	case score <= 80:
		return RankCaptain
	default:
		return RankGrandmaster
	}
}

// DisplayName returns a human-readable label for the rank.
func (r Rank) DisplayName() string {
	switch r {
	case RankCadet:
		return "Cadet"
	case RankCaptain:
		return "Captain"
	case RankGrandmaster:
		return "Grandmaster"
	default:
		return string(r)
	}
}

// Icon returns the display icon for the rank.
func (r Rank) Icon() string {
	switch r {
	case RankCadet:
		return "🚀"
	case RankCaptain:
		return "⭐"
	case RankGrandmaster:
		return "👑"
	default:
		return "✦"
	}
}
