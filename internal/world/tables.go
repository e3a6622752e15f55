package world

import "github.com/osse101/Shardlands_Go/internal/domain"

// enemyType is one ordinary enemy archetype.
type enemyType struct {
	Name         string
	HealthMult   float64
	AttackMult   float64
	DefenseMult  float64
	Rarity       domain.Rarity
	AbilityTiers map[int][]string // difficulty threshold -> full ability list
}

var enemyTypes = []enemyType{
	{"Shard Golem", 1.2, 1.0, 1.4, domain.RarityCommon, map[int][]string{
		3: {"attack", "shield"},
		5: {"attack", "shield", "regenerate"},
	}},
	{"Crystal Spider", 0.8, 1.3, 0.7, domain.RarityCommon, map[int][]string{
		3: {"attack", "double_strike"},
		5: {"attack", "double_strike", "poison"},
	}},
	{"Shadow Wraith", 1.0, 1.2, 0.8, domain.RarityUncommon, map[int][]string{
		3: {"attack", "life_drain"},
		5: {"attack", "life_drain", "curse"},
	}},
	{"Memory Eater", 1.1, 1.1, 1.0, domain.RarityUncommon, map[int][]string{
		3: {"attack", "confuse"},
		5: {"attack", "confuse", "mind_blast"},
	}},
	{"Void Stalker", 1.3, 1.4, 1.1, domain.RarityRare, map[int][]string{
		3: {"attack", "void_strike"},
		5: {"attack", "void_strike", "darkness"},
	}},
}

// miniBossType is one mini-boss archetype with a fixed ability list.
type miniBossType struct {
	Name        string
	HealthMult  float64
	AttackMult  float64
	DefenseMult float64
	Abilities   []string
}

var miniBossTypes = []miniBossType{
	{"Crystal Overlord", 2.0, 1.8, 1.5, []string{"attack", "crystal_burst", "summon_shards", "overcharge"}},
	{"Void Harbinger", 1.8, 2.0, 1.3, []string{"attack", "void_explosion", "shadow_clone", "death_mark"}},
	{"Memory Sovereign", 1.7, 1.7, 1.7, []string{"attack", "mind_shatter", "temporal_shift", "essence_drain"}},
}

var roomDescriptions = map[domain.RoomType][]string{
	domain.RoomCombat: {
		"A dark chamber echoes with distant growls.",
		"Crystal formations cast eerie shadows on the walls.",
		"The air crackles with hostile energy.",
	},
	domain.RoomTreasure: {
		"Glittering shards catch your eye in the corners.",
		"A peaceful sanctuary filled with crystalline formations.",
		"Ancient pedestals hold mysterious artifacts.",
	},
	domain.RoomEvent: {
		"Strange symbols pulse with an inner light.",
		"The air shimmers with potential possibilities.",
		"Time seems to flow differently in this space.",
	},
	domain.RoomMiniBoss: {
		"The air grows heavy with malevolent energy as an ancient guardian stirs...",
		"Crystal formations pulse with an ominous rhythm, heralding a powerful presence...",
		"The very walls seem to tremble before the might of what awaits you...",
		"An otherworldly silence falls as you sense an overwhelming force ahead...",
	},
}

// ordinaryRoomTypes are drawn uniformly when no mini-boss is due.
var ordinaryRoomTypes = []domain.RoomType{domain.RoomCombat, domain.RoomTreasure, domain.RoomEvent}
