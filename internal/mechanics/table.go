package mechanics

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Table names - the stable identifiers callers look constants up by
const (
	NameMaxCharacterLevel                             = "MAX_CHARACTER_LEVEL"
	NameMaxTalentPoints                               = "MAX_TALENT_POINTS"
	NameBossLevel                                     = "BOSS_LEVEL"
	NameExpertisePerQuarterPercentReduction           = "EXPERTISE_PER_QUARTER_PERCENT_REDUCTION"
	NameMeleeCritRatingPerCritChance                  = "MELEE_CRIT_RATING_PER_CRIT_CHANCE"
	NameMeleeHitRatingPerHitChance                    = "MELEE_HIT_RATING_PER_HIT_CHANCE"
	NameArmorPenPerPercentArmor                       = "ARMOR_PEN_PER_PERCENT_ARMOR"
	NameSpellCritRatingPerCritChance                  = "SPELL_CRIT_RATING_PER_CRIT_CHANCE"
	NameSpellHitRatingPerHitChance                    = "SPELL_HIT_RATING_PER_HIT_CHANCE"
	NameHasteRatingPerHastePercent                    = "HASTE_RATING_PER_HASTE_PERCENT"
	NameSpecialMeleeHasteRatingPerHastePercent        = "SPECIAL_MELEE_HASTE_RATING_PER_HASTE_PERCENT"
	NameDefenseRatingPerDefense                       = "DEFENSE_RATING_PER_DEFENSE"
	NameMissDodgeParryBlockCritChancePerDefense       = "MISS_DODGE_PARRY_BLOCK_CRIT_CHANCE_PER_DEFENSE"
	NameBlockRatingPerBlockChance                     = "BLOCK_RATING_PER_BLOCK_CHANCE"
	NameDodgeRatingPerDodgeChance                     = "DODGE_RATING_PER_DODGE_CHANCE"
	NameParryRatingPerParryChance                     = "PARRY_RATING_PER_PARRY_CHANCE"
	NameResilienceRatingPerCritReductionChance        = "RESILIENCE_RATING_PER_CRIT_REDUCTION_CHANCE"
	NameResilienceRatingPerCritDamageReductionPercent = "RESILIENCE_RATING_PER_CRIT_DAMAGE_REDUCTION_PERCENT"
)

// Constant is one row of the mechanics table.
// Base and Offset are only set for rows derived from another row.
type Constant struct {
	Name   string  `json:"name" yaml:"name"`
	Value  float64 `json:"value" yaml:"value"`
	Base   string  `json:"base,omitempty" yaml:"base,omitempty"`
	Offset float64 `json:"offset,omitempty" yaml:"offset,omitempty"`
}

// Derived reports whether the row is computed from another row.
func (c Constant) Derived() bool {
	return c.Base != ""
}

// Title returns the name in human readable form, e.g. "Boss Level".
func (c Constant) Title() string {
	words := strings.ReplaceAll(strings.ToLower(c.Name), "_", " ")
	return cases.Title(language.English).String(words)
}

// table is the declaration-ordered set of rows. Never handed out directly.
var table = []Constant{
	{Name: NameMaxCharacterLevel, Value: MaxCharacterLevel},
	{Name: NameMaxTalentPoints, Value: MaxTalentPoints, Base: NameMaxCharacterLevel, Offset: talentPointsLevelOffset},
	{Name: NameBossLevel, Value: BossLevel, Base: NameMaxCharacterLevel, Offset: bossLevelOffset},

	{Name: NameExpertisePerQuarterPercentReduction, Value: ExpertisePerQuarterPercentReduction},
	{Name: NameMeleeCritRatingPerCritChance, Value: MeleeCritRatingPerCritChance},
	{Name: NameMeleeHitRatingPerHitChance, Value: MeleeHitRatingPerHitChance},
	{Name: NameArmorPenPerPercentArmor, Value: ArmorPenPerPercentArmor},

	{Name: NameSpellCritRatingPerCritChance, Value: SpellCritRatingPerCritChance},
	{Name: NameSpellHitRatingPerHitChance, Value: SpellHitRatingPerHitChance},

	{Name: NameHasteRatingPerHastePercent, Value: HasteRatingPerHastePercent},
	{Name: NameSpecialMeleeHasteRatingPerHastePercent, Value: SpecialMeleeHasteRatingPerHastePercent},

	{Name: NameDefenseRatingPerDefense, Value: DefenseRatingPerDefense},
	{Name: NameMissDodgeParryBlockCritChancePerDefense, Value: MissDodgeParryBlockCritChancePerDefense},
	{Name: NameBlockRatingPerBlockChance, Value: BlockRatingPerBlockChance},
	{Name: NameDodgeRatingPerDodgeChance, Value: DodgeRatingPerDodgeChance},
	{Name: NameParryRatingPerParryChance, Value: ParryRatingPerParryChance},
	{Name: NameResilienceRatingPerCritReductionChance, Value: ResilienceRatingPerCritReductionChance},
	{Name: NameResilienceRatingPerCritDamageReductionPercent, Value: ResilienceRatingPerCritDamageReductionPercent},
}

var tableIndex = buildIndex(table)

func buildIndex(rows []Constant) map[string]int {
	index := make(map[string]int, len(rows))
	for i, row := range rows {
		if _, dup := index[row.Name]; dup {
			panic(fmt.Sprintf("mechanics: duplicate constant %q", row.Name))
		}
		index[row.Name] = i
	}
	return index
}

// normalizeName accepts "boss-level", "Boss Level" and "BOSS_LEVEL" alike.
func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.NewReplacer("-", "_", " ", "_").Replace(name)
	return strings.ToUpper(name)
}

// Lookup returns the row with the given name.
func Lookup(name string) (Constant, error) {
	i, ok := tableIndex[normalizeName(name)]
	if !ok {
		return Constant{}, fmt.Errorf("%w: %q", ErrUnknownConstant, name)
	}
	return table[i], nil
}

// MustLookup is Lookup for names known at compile time.
func MustLookup(name string) Constant {
	c, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return c
}

// All returns a copy of every row in declaration order.
func All() []Constant {
	rows := make([]Constant, len(table))
	copy(rows, table)
	return rows
}

// Names returns the sorted table names.
func Names() []string {
	names := make([]string, 0, len(table))
	for _, row := range table {
		names = append(names, row.Name)
	}
	sort.Strings(names)
	return names
}
