package mechanics

// firstTalentLevel is the level that grants the first talent point.
const firstTalentLevel = 1 - talentPointsLevelOffset

// TalentPointsAtLevel returns the talent points available at a level,
// clamped to [0, MaxTalentPoints].
func TalentPointsAtLevel(level int) int {
	if level < firstTalentLevel {
		return 0
	}
	if level >= MaxCharacterLevel {
		return MaxTalentPoints
	}
	return level + talentPointsLevelOffset
}

// IsBossLevel reports whether a target level counts as a raid boss.
func IsBossLevel(level int) bool {
	return level >= BossLevel
}

