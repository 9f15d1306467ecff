package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Chest tier odds as cumulative bands over a single uniform roll.
var tierBands = []struct {
	tier ChestTier
	cum  float64
}{
	{TierCommon, 0.45},
	{TierUncommon, 0.75},
	{TierRare, 0.90},
	{TierEpic, 0.97},
	{TierMythic, 1.00},
}

// Fixed bonus-XP reward per tier. Every chest carries exactly one.
var tierBonusXP = map[ChestTier]float64{
	TierCommon:   25,
	TierUncommon: 50,
	TierRare:     100,
	TierEpic:     200,
	TierMythic:   400,
}

// Coin amounts per tier: normal / large / jackpot, gated by a 60/30/10
// sub-roll. Amounts are literal tables, not a tier multiplier.
var tierCoins = map[ChestTier][3]int{
	TierCommon:   {45, 90, 135},
	TierUncommon: {90, 180, 270},
	TierRare:     {180, 360, 540},
	TierEpic:     {360, 720, 1080},
	TierMythic:   {720, 1440, 2160},
}

// Chance that a chest carries an extra item reward, by tier.
var tierItemChance = map[ChestTier]float64{
	TierCommon:   0.60,
	TierUncommon: 0.70,
	TierRare:     0.80,
	TierEpic:     0.90,
	TierMythic:   0.95,
}

// Item rarity odds by chest tier, cumulative over uncommon/rare/epic/mythic.
var tierItemRarity = map[ChestTier][4]float64{
	TierCommon:   {0.70, 0.95, 0.99, 1.00},
	TierUncommon: {0.55, 0.90, 0.98, 1.00},
	TierRare:     {0.35, 0.80, 0.95, 1.00},
	TierEpic:     {0.15, 0.60, 0.90, 1.00},
	TierMythic:   {0.05, 0.35, 0.75, 1.00},
}

var itemRarities = [4]string{"uncommon", "rare", "epic", "mythic"}

// Small fixed item catalog per rarity; the concrete drop is uniform.
var itemCatalog = map[string][]string{
	"uncommon": {"Worn Lifting Straps", "Chalk Pouch", "Frayed Jump Rope", "Tin Shaker"},
	"rare":     {"Reinforced Belt", "Springsteel Rope", "Iron Gripper", "Runner's Band"},
	"epic":     {"Titan Knee Sleeves", "Gilded Kettlebell", "Stormcloth Singlet"},
	"mythic":   {"Heart of the Colossus", "Crown of Endless Wind"},
}

// rollTier picks a chest tier from a single uniform roll.
func (e *Engine) rollTier() ChestTier {
	roll := e.rng.Float64()
	for _, b := range tierBands {
		if roll < b.cum {
			return b.tier
		}
	}
	return TierMythic
}

// rollChest builds a fully-rolled chest for a level-up. Every chest holds one
// bonus-XP reward and one coins reward; a tier-gated chance adds one item.
func (e *Engine) rollChest(level int, at time.Time) TreasureChest {
	tier := e.rollTier()
	chest := TreasureChest{
		ID:            uuid.NewString(),
		Tier:          tier,
		EarnedAtLevel: level,
		DateEarned:    at,
	}

	chest.Rewards = append(chest.Rewards, TreasureReward{
		Type:        RewardBonusXP,
		Amount:      tierBonusXP[tier],
		Description: fmt.Sprintf("%.0f bonus XP", tierBonusXP[tier]),
	})

	coins := tierCoins[tier]
	amount := coins[0]
	switch sub := e.rng.Float64(); {
	case sub >= 0.90:
		amount = coins[2] // jackpot
	case sub >= 0.60:
		amount = coins[1] // large
	}
	chest.Rewards = append(chest.Rewards, TreasureReward{
		Type:        RewardCoins,
		Amount:      float64(amount),
		Description: fmt.Sprintf("%d coins", amount),
	})

	if e.rng.Float64() < tierItemChance[tier] {
		rarity := itemRarities[len(itemRarities)-1]
		roll := e.rng.Float64()
		for i, cum := range tierItemRarity[tier] {
			if roll < cum {
				rarity = itemRarities[i]
				break
			}
		}
		pool := itemCatalog[rarity]
		name := pool[e.rng.Intn(len(pool))]
		chest.Rewards = append(chest.Rewards, TreasureReward{
			Type:        RewardItem,
			Amount:      1,
			Description: fmt.Sprintf("%s (%s)", name, rarity),
			Item:        &ItemInfo{Name: name, Rarity: rarity},
		})
	}
	return chest
}
