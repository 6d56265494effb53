package assessment

// Score bands shared by every domain. Wording differs per domain, the
// numeric thresholds do not.
const (
	bandExcellent = 80
	bandGood      = 60
	bandModerate  = 40
)

var interpretations = map[Domain][4]string{
	DomainMental: {
		"Excellent emotional balance",
		"Good emotional balance",
		"Moderate emotional balance",
		"Consider focusing on emotional wellness",
	},
	DomainPhysical: {
		"Excellent vitality",
		"Good vitality",
		"Moderate vitality",
		"Consider focusing on physical wellness",
	},
	DomainCognitive: {
		"Excellent cognitive clarity",
		"Good cognitive clarity",
		"Moderate cognitive clarity",
		"Consider focusing on cognitive wellness",
	},
}

// Interpretation maps a score onto the domain's qualitative label.
func Interpretation(score int, d Domain) string {
	labels, ok := interpretations[d]
	if !ok {
		return ""
	}
	switch {
	case score >= bandExcellent:
		return labels[0]
	case score >= bandGood:
		return labels[1]
	case score >= bandModerate:
		return labels[2]
	default:
		return labels[3]
	}
}

// Recommendation lists are cumulative: every score gets the base list, scores
// below 60 append the mid-band items, scores below 40 append the low-band
// items on top of those. Lower scores always yield a superset.
type recommendationSet struct {
	base    []string
	below60 []string
	below40 []string
}

var recommendationSets = map[Domain]recommendationSet{
	DomainMental: {
		base: []string{
			"Keep a short daily note of one thing that went well",
			"Protect time each week for an activity you genuinely enjoy",
		},
		below60: []string{
			"Try a 10-minute guided breathing or meditation session each morning",
			"Schedule a regular check-in with a friend or family member",
		},
		below40: []string{
			"Consider speaking with a licensed therapist or counselor",
			"Prioritize one restorative activity every day this week",
		},
	},
	DomainPhysical: {
		base: []string{
			"Keep a consistent sleep and wake schedule, including weekends",
			"Stay hydrated throughout the day",
		},
		below60: []string{
			"Add two 20-minute walks to your week and build from there",
			"Keep your bedroom cool and layer bedding to ease night sweats",
		},
		below40: []string{
			"Book a check-up to review your symptoms with your clinician",
			"Start a gentle strength routine twice a week",
		},
	},
	DomainCognitive: {
		base: []string{
			"Give your brain a daily workout: a puzzle, a chapter, a new recipe",
			"Take short screen breaks every hour to reset your attention",
		},
		below60: []string{
			"Write down key tasks and appointments instead of relying on recall",
			"Practice single-tasking on one meaningful task each day",
		},
		below40: []string{
			"Discuss persistent memory concerns with your clinician",
			"Establish a consistent wind-down routine to protect deep sleep",
		},
	},
}

// Recommendations returns the ordered advisory list for a score, growing as
// the score drops below the 60 and 40 thresholds.
func Recommendations(score int, d Domain) []string {
	set, ok := recommendationSets[d]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set.base)+len(set.below60)+len(set.below40))
	out = append(out, set.base...)
	if score < bandGood {
		out = append(out, set.below60...)
	}
	if score < bandModerate {
		out = append(out, set.below40...)
	}
	return out
}
