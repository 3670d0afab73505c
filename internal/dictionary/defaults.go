package dictionary

// Built-in keyword dictionaries. Labels are declared in priority order:
// when the same keyword appears under two labels of one category, the
// first declared label owns it.
func defaultCategories() []Category {
	return []Category{
		{
			Name: CategoryFunctions,
			Labels: []Label{
				{Name: "climate", Keywords: []string{"climate", "sustainability", "esg", "environmental", "carbon", "impact"}},
				{Name: "finance", Keywords: []string{"finance", "financial", "treasury", "accounting", "cfo"}},
				{Name: "risk", Keywords: []string{"risk", "compliance", "aml", "regulatory", "governance"}},
				{Name: "technology", Keywords: []string{"engineer", "developer", "tech", "software", "data", "ai", "ml", "genai"}},
				{Name: "marketing", Keywords: []string{"marketing", "brand", "communications", "pr", "content", "creative"}},
				{Name: "sales", Keywords: []string{"sales", "business development", "bd", "account", "partnership", "gtm"}},
				{Name: "product", Keywords: []string{"product", "pm", "product manager"}},
				{Name: "operations", Keywords: []string{"operations", "ops", "delivery", "project management"}},
				{Name: "hr", Keywords: []string{"people", "hr", "human resources", "talent"}},
				{Name: "executive", Keywords: []string{"ceo", "coo", "cto", "cfo", "cmo", "founder", "co-founder", "president", "chief"}},
			},
		},
		{
			Name: CategorySeniority,
			Labels: []Label{
				{Name: "c_level", Keywords: []string{"ceo", "cto", "cfo", "cmo", "coo", "cio", "chief", "president"}},
				{Name: "vp", Keywords: []string{"vp", "vice president", "svp", "evp"}},
				{Name: "director", Keywords: []string{"director", "head of", "head"}},
				{Name: "manager", Keywords: []string{"manager", "lead", "principal"}},
				{Name: "senior", Keywords: []string{"senior", "sr.", "sr "}},
				{Name: "mid", Keywords: []string{"specialist", "analyst", "engineer", "developer", "consultant"}},
				{Name: "entry", Keywords: []string{"junior", "associate", "assistant", "coordinator"}},
			},
		},
		{
			Name: CategoryCompanyTypes,
			Labels: []Label{
				{Name: "fintech", Keywords: []string{"klarna", "stripe", "paypal", "square", "revolut", "wise", "fintech"}},
				{Name: "consulting", Keywords: []string{"mckinsey", "bcg", "bain", "pwc", "ey", "deloitte", "kpmg", "accenture"}},
				{Name: "tech", Keywords: []string{"google", "microsoft", "amazon", "apple", "meta", "ibm", "salesforce"}},
				{Name: "finance", Keywords: []string{"bank", "capital", "investment", "venture", "fund", "financial"}},
				{Name: "climate_tech", Keywords: []string{"climate", "sustainability", "carbon", "renewable", "green", "environmental"}},
				{Name: "startup", Keywords: []string{"startup", "founder", "co-founder", "venture"}},
				{Name: "enterprise", Keywords: []string{"enterprise", "corporation", "global", "multinational"}},
			},
		},
		{
			Name: CategoryGeographies,
			Labels: []Label{
				{Name: "nordics", Keywords: []string{"sweden", "norway", "denmark", "finland", "stockholm", "oslo", "copenhagen", "helsinki", "nordic"}},
				{Name: "europe", Keywords: []string{"uk", "germany", "france", "spain", "italy", "portugal", "netherlands", "europe", "emea"}},
				{Name: "north_america", Keywords: []string{"usa", "us", "canada", "north america", "americas"}},
				{Name: "apac", Keywords: []string{"apac", "asia", "australia", "singapore", "japan", "china", "anz"}},
				{Name: "latam", Keywords: []string{"latam", "latin america", "brazil", "mexico"}},
			},
		},
	}
}

func defaultICP() ICPConfig {
	return ICPConfig{
		TargetFunctions:    []string{"climate", "finance", "risk", "executive"},
		TargetSeniority:    []string{"c_level", "vp", "director"},
		TargetCompanyTypes: []string{"fintech", "finance", "climate_tech", "enterprise"},
		TargetGeo:          []string{"nordics", "europe"},
	}
}

func defaultExclusions() []string {
	return []string{
		"competitor_company_name",
		"spam",
		"bot",
	}
}

func defaultPostKeywords() []string {
	return []string{"climate", "resilience", "sustainability", "carbon", "environmental"}
}

func defaultCTAPhrases() []string {
	return []string{
		"learn more", "read more", "click here", "sign up", "register",
		"join us", "get started", "download", "check out", "discover",
		"explore", "find out", "see how", "book", "apply", "comment below",
		"share your", "what do you think", "tell us", "let us know",
		"let me know", "reach out",
	}
}

func defaultEngagementWords() []string {
	return []string{
		"question", "?", "what", "how", "why", "share", "thoughts",
		"experience", "story", "announcement", "excited", "proud",
	}
}
