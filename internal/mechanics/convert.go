package mechanics

import (
	"fmt"
	"math"
	"strings"
)

// quarterPercent is the reduction granted per ExpertisePerQuarterPercentReduction.
const quarterPercent = 0.25

// Stat identifies a rating that can be converted to its percentage effect.
type Stat int

const (
	StatUnknown Stat = iota
	StatMeleeCrit
	StatMeleeHit
	StatSpellCrit
	StatSpellHit
	StatHaste
	StatSpecialMeleeHaste
	StatArmorPen
	StatExpertise
	StatDefense
	StatBlock
	StatDodge
	StatParry
	StatResilienceCrit
	StatResilienceCritDamage
)

var statNames = map[Stat]string{
	StatMeleeCrit:            "melee_crit",
	StatMeleeHit:             "melee_hit",
	StatSpellCrit:            "spell_crit",
	StatSpellHit:             "spell_hit",
	StatHaste:                "haste",
	StatSpecialMeleeHaste:    "special_melee_haste",
	StatArmorPen:             "armor_pen",
	StatExpertise:            "expertise",
	StatDefense:              "defense",
	StatBlock:                "block",
	StatDodge:                "dodge",
	StatParry:                "parry",
	StatResilienceCrit:       "resilience_crit",
	StatResilienceCritDamage: "resilience_crit_damage",
}

// ratingPerEffect maps each stat to the table row it divides by.
var ratingPerEffect = map[Stat]string{
	StatMeleeCrit:            NameMeleeCritRatingPerCritChance,
	StatMeleeHit:             NameMeleeHitRatingPerHitChance,
	StatSpellCrit:            NameSpellCritRatingPerCritChance,
	StatSpellHit:             NameSpellHitRatingPerHitChance,
	StatHaste:                NameHasteRatingPerHastePercent,
	StatSpecialMeleeHaste:    NameSpecialMeleeHasteRatingPerHastePercent,
	StatArmorPen:             NameArmorPenPerPercentArmor,
	StatExpertise:            NameExpertisePerQuarterPercentReduction,
	StatDefense:              NameDefenseRatingPerDefense,
	StatBlock:                NameBlockRatingPerBlockChance,
	StatDodge:                NameDodgeRatingPerDodgeChance,
	StatParry:                NameParryRatingPerParryChance,
	StatResilienceCrit:       NameResilienceRatingPerCritReductionChance,
	StatResilienceCritDamage: NameResilienceRatingPerCritDamageReductionPercent,
}

func (s Stat) String() string {
	if name, ok := statNames[s]; ok {
		return name
	}
	return "unknown"
}

// Constant returns the table row the stat converts with.
func (s Stat) Constant() (Constant, error) {
	name, ok := ratingPerEffect[s]
	if !ok {
		return Constant{}, fmt.Errorf("%w: %d", ErrUnknownStat, int(s))
	}
	return Lookup(name)
}

// ParseStat resolves a stat from its snake_case name.
func ParseStat(name string) (Stat, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "-", "_")
	for stat, n := range statNames {
		if n == name {
			return stat, nil
		}
	}
	return StatUnknown, fmt.Errorf("%w: %q", ErrUnknownStat, name)
}

// Stats returns every convertible stat in declaration order.
func Stats() []Stat {
	stats := make([]Stat, 0, len(statNames))
	for s := StatMeleeCrit; s <= StatResilienceCritDamage; s++ {
		stats = append(stats, s)
	}
	return stats
}

// RatingToPercent divides rating by a "rating per percent" value.
func RatingToPercent(rating, ratingPerPercent float64) float64 {
	if ratingPerPercent == 0 {
		return 0
	}
	return rating / ratingPerPercent
}

// PercentToRating multiplies percent by a "rating per percent" value.
func PercentToRating(percent, ratingPerPercent float64) float64 {
	return percent * ratingPerPercent
}

// Convert turns a rating into the effect named by the stat.
// Expertise yields percent dodge/parry reduction and Defense yields defense
// skill; every other stat yields percent.
func Convert(stat Stat, rating float64) (float64, error) {
	if rating < 0 || math.IsNaN(rating) || math.IsInf(rating, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRating, rating)
	}

	c, err := stat.Constant()
	if err != nil {
		return 0, err
	}

	effect := RatingToPercent(rating, c.Value)
	if stat == StatExpertise {
		effect *= quarterPercent
	}
	return effect, nil
}

// RatingForEffect is the inverse of Convert: the rating needed for an effect.
func RatingForEffect(stat Stat, effect float64) (float64, error) {
	if effect < 0 || math.IsNaN(effect) || math.IsInf(effect, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidEffect, effect)
	}

	c, err := stat.Constant()
	if err != nil {
		return 0, err
	}

	if stat == StatExpertise {
		effect /= quarterPercent
	}
	return PercentToRating(effect, c.Value), nil
}

// DefenseAvoidance returns the percent miss, dodge, parry, block and crit
// avoidance granted by a defense rating.
func DefenseAvoidance(rating float64) (float64, error) {
	defense, err := Convert(StatDefense, rating)
	if err != nil {
		return 0, err
	}
	return defense * MissDodgeParryBlockCritChancePerDefense, nil
}

// Class is a playable class, as far as rating conversions care.
type Class string

const (
	ClassDruid   Class = "druid"
	ClassHunter  Class = "hunter"
	ClassMage    Class = "mage"
	ClassPaladin Class = "paladin"
	ClassPriest  Class = "priest"
	ClassRogue   Class = "rogue"
	ClassShaman  Class = "shaman"
	ClassWarlock Class = "warlock"
	ClassWarrior Class = "warrior"
)

// MeleeHasteRatingPerPercent returns the melee haste conversion for a class.
func MeleeHasteRatingPerPercent(class Class) float64 {
	switch Class(strings.ToLower(string(class))) {
	case ClassShaman, ClassPaladin, ClassDruid:
		return SpecialMeleeHasteRatingPerHastePercent
	default:
		return HasteRatingPerHastePercent
	}
}

// MeleeHasteStat returns the haste stat a class converts melee haste with.
func MeleeHasteStat(class Class) Stat {
	if MeleeHasteRatingPerPercent(class) == SpecialMeleeHasteRatingPerHastePercent {
		return StatSpecialMeleeHaste
	}
	return StatHaste
}
