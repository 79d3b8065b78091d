package taxonomy

// Default returns the built-in reference set. Entry order matters: safe
// entries come first, then caution, then banned, so broad safe synonyms win
// ties against the later tiers the same way the seeded store does.
func Default() *Taxonomy {
	return New([]Entry{
		{
			Name:        "Water",
			RiskLevel:   RiskSafe,
			Description: "Essential nutrient, completely safe for consumption",
			Sources:     []string{"WHO", "FDA"},
			Synonyms:    []string{"water"},
		},
		{
			Name:        "Sugar",
			RiskLevel:   RiskSafe,
			Description: "Natural sweetener, safe in moderation",
			Sources:     []string{"FDA"},
			Synonyms:    []string{"sugar"},
		},
		{
			Name:        "Salt",
			RiskLevel:   RiskSafe,
			Description: "Sodium chloride, essential mineral when consumed in moderation",
			Sources:     []string{"FDA"},
			Synonyms:    []string{"salt"},
		},
		{
			Name:        "Flour",
			RiskLevel:   RiskSafe,
			Description: "Wheat flour, safe for most people except those with celiac disease",
			Sources:     []string{"FDA"},
			Synonyms:    []string{"flour"},
		},
		{
			Name:        "Milk",
			RiskLevel:   RiskSafe,
			Description: "Dairy product, safe for lactose-tolerant individuals",
			Sources:     []string{"FDA", "USDA"},
			Synonyms:    []string{"milk"},
		},
		{
			Name:        "Eggs",
			RiskLevel:   RiskSafe,
			Description: "High-quality protein source, safe when properly cooked",
			Sources:     []string{"FDA", "USDA"},
			Synonyms:    []string{"eggs"},
		},
		{
			Name:        "Honey",
			RiskLevel:   RiskSafe,
			Description: "Natural sweetener with antioxidants, safe for most people (not for infants under 1 year)",
			Sources:     []string{"FDA", "WHO"},
			Synonyms:    []string{"honey"},
		},
		{
			Name:        "Olive Oil",
			RiskLevel:   RiskSafe,
			Description: "Healthy fat, rich in monounsaturated fatty acids",
			Sources:     []string{"American Heart Association"},
			Synonyms:    []string{"olive oil"},
		},
		{
			Name:        "Rice",
			RiskLevel:   RiskSafe,
			Description: "Staple grain, safe when cooked properly",
			Sources:     []string{"USDA"},
			Synonyms:    []string{"rice"},
		},
		{
			Name:        "Oats",
			RiskLevel:   RiskSafe,
			Description: "Whole grain high in fiber and beneficial for heart health",
			Sources:     []string{"FDA", "USDA"},
			Synonyms:    []string{"oats"},
		},
		{
			Name:        "Coconut Oil",
			RiskLevel:   RiskSafe,
			Description: "Natural fat, stable for cooking, contains medium-chain triglycerides",
			Sources:     []string{"FDA"},
			Synonyms:    []string{"coconut oil"},
		},
		{
			Name:        "Sodium Benzoate",
			RiskLevel:   RiskCaution,
			Description: "Preservative that may cause allergic reactions in sensitive individuals",
			Sources:     []string{"FDA", "European Food Safety Authority"},
			Synonyms:    []string{"sodium benzoate"},
		},
		{
			Name:        "High Fructose Corn Syrup",
			RiskLevel:   RiskCaution,
			Description: "Sweetener linked to obesity and metabolic issues when consumed in excess",
			Sources:     []string{"American Heart Association", "Mayo Clinic"},
			Synonyms:    []string{"high fructose corn syrup"},
		},
		{
			Name:        "Monosodium Glutamate (MSG)",
			RiskLevel:   RiskCaution,
			Description: "Flavor enhancer that may cause headaches in sensitive individuals",
			Sources:     []string{"FDA"},
			Synonyms:    []string{"monosodium glutamate", "monosodium glutamate (msg)"},
		},
		{
			Name:        "Artificial Vanilla",
			RiskLevel:   RiskCaution,
			Description: "Synthetic flavoring, generally safe but some prefer natural alternatives",
			Sources:     []string{"FDA"},
			Synonyms:    []string{"artificial vanilla"},
		},
		{
			Name:        "Potassium Sorbate",
			RiskLevel:   RiskCaution,
			Description: "Preservative that may cause skin irritation in sensitive individuals",
			Sources:     []string{"FDA"},
			Synonyms:    []string{"potassium sorbate"},
		},
		{
			Name:        "Aspartame",
			RiskLevel:   RiskCaution,
			Description: "Artificial sweetener, not recommended for people with PKU condition",
			Sources:     []string{"FDA", "WHO"},
			Synonyms:    []string{"aspartame"},
		},
		{
			Name:        "Acesulfame Potassium (Ace-K)",
			RiskLevel:   RiskCaution,
			Description: "Artificial sweetener, safe within limits but controversial for long-term effects",
			Sources:     []string{"FDA"},
			Synonyms:    []string{"acesulfame k", "acesulfame potassium (ace-k)"},
		},
		{
			Name:        "Saccharin",
			RiskLevel:   RiskCaution,
			Description: "Artificial sweetener, allowed but linked to bladder cancer in animal studies",
			Sources:     []string{"FDA", "National Cancer Institute"},
			Synonyms:    []string{"saccharin"},
		},
		{
			Name:        "Sodium Nitrate",
			RiskLevel:   RiskCaution,
			Description: "Used in processed meats, may form carcinogenic nitrosamines when cooked at high heat",
			Sources:     []string{"WHO", "FDA"},
			Synonyms:    []string{"sodium nitrate"},
		},
		{
			Name:        "Red Dye 40",
			RiskLevel:   RiskBanned,
			Description: "Artificial coloring banned in several countries due to hyperactivity concerns",
			BannedIn:    map[string]bool{"EU": true, "Norway": true, "Austria": true},
			Sources:     []string{"European Food Safety Authority", "Center for Science in Public Interest"},
			Synonyms:    []string{"red dye 40"},
		},
		{
			Name:        "Yellow Dye 6",
			RiskLevel:   RiskBanned,
			Description: "Artificial coloring banned in some countries, linked to hyperactivity",
			BannedIn:    map[string]bool{"Norway": true, "Finland": true},
			Sources:     []string{"European Food Safety Authority"},
			Synonyms:    []string{"yellow dye 6"},
		},
		{
			Name:        "BHA (Butylated Hydroxyanisole)",
			RiskLevel:   RiskBanned,
			Description: "Preservative classified as possible carcinogen, banned in some countries",
			BannedIn:    map[string]bool{"EU": true, "Japan": true},
			Sources:     []string{"International Agency for Research on Cancer"},
			Synonyms:    []string{"bha", "bha (butylated hydroxyanisole)"},
		},
		{
			Name:        "BHT (Butylated Hydroxytoluene)",
			RiskLevel:   RiskBanned,
			Description: "Preservative banned in several countries due to health concerns",
			BannedIn:    map[string]bool{"EU": true, "Australia": true, "New Zealand": true},
			Sources:     []string{"European Food Safety Authority"},
			Synonyms:    []string{"bht", "bht (butylated hydroxytoluene)"},
		},
		{
			Name:        "Trans Fat",
			RiskLevel:   RiskBanned,
			Description: "Artificial trans fats banned due to cardiovascular health risks",
			BannedIn:    map[string]bool{"US": true, "Canada": true, "EU": true},
			Sources:     []string{"WHO", "FDA", "American Heart Association"},
			Synonyms:    []string{"trans fat"},
		},
		{
			Name:        "Brominated Vegetable Oil (BVO)",
			RiskLevel:   RiskBanned,
			Description: "Emulsifier banned in EU and Japan, linked to reproductive and thyroid issues",
			BannedIn:    map[string]bool{"EU": true, "Japan": true, "India": true},
			Sources:     []string{"FDA", "EFSA"},
			Synonyms:    []string{"brominated vegetable oil", "brominated vegetable oil (bvo)"},
		},
		{
			Name:        "Azodicarbonamide",
			RiskLevel:   RiskBanned,
			Description: "Used in bread as a dough conditioner, banned in EU and Australia",
			BannedIn:    map[string]bool{"EU": true, "Australia": true, "Singapore": true},
			Sources:     []string{"European Food Safety Authority", "FDA"},
			Synonyms:    []string{"azodicarbonamide"},
		},
		{
			Name:        "Ractopamine",
			RiskLevel:   RiskBanned,
			Description: "Feed additive banned in EU, China, and Russia due to safety concerns",
			BannedIn:    map[string]bool{"EU": true, "China": true, "Russia": true},
			Sources:     []string{"FAO", "EFSA"},
			Synonyms:    []string{"ractopamine"},
		},
	})
}
