package assessment

// The question banks below are fixed content authored once. Reversed flags
// are explicit; historically polarity was implied by the item naming
// convention (ids containing phq9, gad7, hot_flashes, joint_pain,
// memory_recall or word_finding are the negatively phrased instruments), and
// the bank tests keep the flags aligned with that convention.

var frequencyOptions = []string{"Not at all", "Several days", "More than half the days", "Nearly every day"}

var mentalQuestions = []Question{
	{
		ID:       "phq9_interest",
		Prompt:   "Over the last two weeks, how often have you had little interest or pleasure in doing things?",
		Options:  frequencyOptions,
		Weight:   1.2,
		Reversed: true,
	},
	{
		ID:       "phq9_mood",
		Prompt:   "Over the last two weeks, how often have you felt down, depressed, or hopeless?",
		Options:  frequencyOptions,
		Weight:   1.3,
		Reversed: true,
	},
	{
		ID:       "gad7_anxious",
		Prompt:   "Over the last two weeks, how often have you felt nervous, anxious, or on edge?",
		Options:  frequencyOptions,
		Weight:   1.2,
		Reversed: true,
	},
	{
		ID:       "gad7_worry",
		Prompt:   "Over the last two weeks, how often have you been unable to stop or control worrying?",
		Options:  frequencyOptions,
		Weight:   1.1,
		Reversed: true,
	},
	{
		ID:      "mood_stability",
		Prompt:  "How stable has your mood felt day to day?",
		Options: []string{"Very unstable", "Somewhat unstable", "Neutral", "Mostly stable", "Very stable"},
		Weight:  1.0,
	},
	{
		ID:      "emotional_resilience",
		Prompt:  "How well do you bounce back after a stressful day or setback?",
		Options: []string{"Not at all", "With difficulty", "Somewhat", "Well", "Very well"},
		Weight:  0.9,
	},
	{
		ID:      "social_connection",
		Prompt:  "How connected do you feel to friends, family, or community right now?",
		Options: []string{"Very isolated", "Somewhat isolated", "Neutral", "Connected", "Deeply connected"},
		Weight:  0.8,
	},
	{
		ID:      "life_satisfaction",
		Prompt:  "How satisfied are you with your life overall at this stage?",
		Options: []string{"Very dissatisfied", "Dissatisfied", "Neutral", "Satisfied", "Very satisfied"},
		Weight:  1.0,
	},
}

var physicalQuestions = []Question{
	{
		ID:       "hot_flashes_frequency",
		Prompt:   "How often do hot flashes or night sweats disrupt your day or your sleep?",
		Options:  []string{"Never", "Rarely", "Sometimes", "Often", "Constantly"},
		Weight:   1.5,
		Reversed: true,
	},
	{
		ID:       "joint_pain_severity",
		Prompt:   "How much joint pain or stiffness have you experienced recently?",
		Options:  []string{"None", "Mild", "Moderate", "Strong", "Severe"},
		Weight:   1.3,
		Reversed: true,
	},
	{
		ID:      "sleep_quality",
		Prompt:  "How would you rate the quality of your sleep over the past week?",
		Options: []string{"Very poor", "Poor", "Fair", "Good", "Very good"},
		Weight:  1.2,
	},
	{
		ID:      "energy_level",
		Prompt:  "How would you describe your energy level on a typical day?",
		Options: []string{"Exhausted", "Low", "Moderate", "Good", "Energized"},
		Weight:  1.1,
	},
	{
		ID:      "physical_activity",
		Prompt:  "On how many days in a typical week are you physically active for at least 30 minutes?",
		Options: []string{"0 days", "1-2 days", "3 days", "4 days", "5 or more days"},
		Weight:  1.0,
	},
	{
		ID:      "strength_balance",
		Prompt:  "How confident do you feel in your strength and balance (carrying groceries, climbing stairs)?",
		Options: []string{"Not confident", "Slightly confident", "Confident", "Very confident"},
		Weight:  0.8,
	},
	{
		ID:      "nutrition_habits",
		Prompt:  "How consistently do you eat balanced meals with protein, fiber, and vegetables?",
		Options: []string{"Rarely", "Occasionally", "About half the time", "Most days", "Every day"},
		Weight:  0.9,
	},
}

var cognitiveQuestions = []Question{
	{
		ID:       "memory_recall_lapses",
		Prompt:   "How often do you forget names, appointments, or where you put everyday items?",
		Options:  []string{"Never", "Rarely", "Sometimes", "Often", "Constantly"},
		Weight:   1.4,
		Reversed: true,
	},
	{
		ID:       "word_finding_difficulty",
		Prompt:   "How often do you struggle to find the right word mid-sentence?",
		Options:  []string{"Never", "Rarely", "Sometimes", "Often", "Constantly"},
		Weight:   1.3,
		Reversed: true,
	},
	{
		ID:      "focus_duration",
		Prompt:  "How long can you typically stay focused on a demanding task without drifting?",
		Options: []string{"A few minutes", "About 15 minutes", "About 30 minutes", "An hour", "As long as needed"},
		Weight:  1.1,
	},
	{
		ID:      "mental_clarity",
		Prompt:  "How clear-headed have you felt over the past week?",
		Options: []string{"Very foggy", "Foggy", "Neutral", "Clear", "Very clear"},
		Weight:  1.2,
	},
	{
		ID:      "multitasking_ease",
		Prompt:  "How easily can you switch between tasks without losing your place?",
		Options: []string{"With great difficulty", "With some difficulty", "Fairly easily", "Very easily"},
		Weight:  0.9,
	},
	{
		ID:      "learning_retention",
		Prompt:  "When you learn something new, how well does it stick a few days later?",
		Options: []string{"Not at all", "Poorly", "Moderately", "Well", "Very well"},
		Weight:  1.0,
	},
}
