// Package mechanics holds the combat rating conversion table and the
// arithmetic that turns ratings into percentage effects.
package mechanics

// Offsets of the level values derived from MaxCharacterLevel
const (
	talentPointsLevelOffset = -9
	bossLevelOffset         = 3
)

// Level constants
const (
	MaxCharacterLevel = 60
	MaxTalentPoints   = MaxCharacterLevel + talentPointsLevelOffset
	BossLevel         = MaxCharacterLevel + bossLevelOffset
)

// Offensive rating conversions
const (
	ExpertisePerQuarterPercentReduction = 32.79 / 4
	MeleeCritRatingPerCritChance        = 1
	MeleeHitRatingPerHitChance          = 1
	ArmorPenPerPercentArmor             = 13.99

	SpellCritRatingPerCritChance = 1
	SpellHitRatingPerHitChance   = 1

	HasteRatingPerHastePercent = 32.79

	// Shamans, Paladins and Druids get more melee haste per point of rating.
	SpecialMeleeHasteRatingPerHastePercent = 25.22
)

// Defensive rating conversions
const (
	DefenseRatingPerDefense                       = 4.92
	MissDodgeParryBlockCritChancePerDefense       = 0.04
	BlockRatingPerBlockChance                     = 16.39
	DodgeRatingPerDodgeChance                     = 45.25
	ParryRatingPerParryChance                     = 45.25
	ResilienceRatingPerCritReductionChance        = 94.27
	ResilienceRatingPerCritDamageReductionPercent = 94.27 / 2.2
)

