package catalog

import "degen-prop/internal/models"

// builtinChallenges is the sample catalog. Definitions are never mutated or
// deleted at runtime.
var builtinChallenges = []models.ChallengeDefinition{
	{
		ID:              "1",
		Name:            "Memecoin Madness",
		Description:     "Prove you can ride the memecoin wave. Trade the hottest tokens on Pump.fun with our capital.",
		Platform:        models.PlatformPumpFun,
		InitialCapital:  10000,
		ProfitTargetPct: 20,
		MaxDrawdownPct:  10,
		DurationDays:    30,
		Fee:             99,
		ProfitSplit:     80,
		Leverage:        "10x",
	},
	{
		ID:              "2",
		Name:            "Perp Master",
		Description:     "Master perpetual futures on Drift. Show us your risk management skills.",
		Platform:        models.PlatformDrift,
		InitialCapital:  25000,
		ProfitTargetPct: 15,
		MaxDrawdownPct:  8,
		DurationDays:    45,
		Fee:             199,
		ProfitSplit:     75,
		Leverage:        "20x",
	},
	{
		ID:              "3",
		Name:            "Hyperliquid Hero",
		Description:     "Conquer the Hyperliquid ecosystem. Trade spot, perps, and options.",
		Platform:        models.PlatformHyperliquid,
		InitialCapital:  50000,
		ProfitTargetPct: 12,
		MaxDrawdownPct:  6,
		DurationDays:    60,
		Fee:             399,
		ProfitSplit:     70,
		Leverage:        "50x",
	},
	{
		ID:              "4",
		Name:            "Jupiter Juggernaut",
		Description:     "Navigate the Jupiter ecosystem. Master DEX aggregators and yield farming.",
		Platform:        models.PlatformJupiter,
		InitialCapital:  15000,
		ProfitTargetPct: 25,
		MaxDrawdownPct:  12,
		DurationDays:    30,
		Fee:             149,
		ProfitSplit:     80,
		Leverage:        "5x",
	},
	{
		ID:              "5",
		Name:            "Multi-Platform Master",
		Description:     "Trade across multiple platforms. Show versatility in your approach.",
		Platform:        models.PlatformMulti,
		InitialCapital:  75000,
		ProfitTargetPct: 18,
		MaxDrawdownPct:  8,
		DurationDays:    90,
		Fee:             599,
		ProfitSplit:     65,
		Leverage:        "25x",
	},
	{
		ID:              "6",
		Name:            "Drift + Hyperliquid",
		Description:     "Master both Drift and Hyperliquid. Dual platform expertise required.",
		Platform:        models.PlatformDriftAndHyper,
		InitialCapital:  100000,
		ProfitTargetPct: 15,
		MaxDrawdownPct:  7,
		DurationDays:    75,
		Fee:             799,
		ProfitSplit:     60,
		Leverage:        "30x",
	},
}
