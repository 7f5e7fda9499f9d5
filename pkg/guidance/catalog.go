package guidance

// Template is one fixed catalog entry. The engine selects entries, it never
// creates them; editing the catalog reshuffles future deterministic picks,
// which is accepted.
type Template struct {
	ID      string `json:"id"`
	Tone    string `json:"tone"`
	Advice  string `json:"advice"`
	Mission string `json:"mission"`
	Prompt  string `json:"prompt"`
}

// Catalog is the built-in guidance set. Order matters: the deterministic
// selector indexes into it, so keep new entries at the end.
var Catalog = []Template{
	{
		ID:      "steady-ground",
		Tone:    "grounding",
		Advice:  "Feelings pass through like weather. Today, just notice yours without grading them.",
		Mission: "Name one emotion out loud the moment you feel it.",
		Prompt:  "What was the strongest feeling you carried today, and where in your day did it show up?",
	},
	{
		ID:      "small-wins",
		Tone:    "encouraging",
		Advice:  "Progress hides in small places. One finished small thing outweighs three planned big ones.",
		Mission: "Finish one task you have been postponing for under ten minutes.",
		Prompt:  "What is one small thing you did today that you almost didn't?",
	},
	{
		ID:      "kind-lens",
		Tone:    "compassionate",
		Advice:  "Speak to yourself the way you would to a friend having your day.",
		Mission: "Catch one harsh self-judgement and rephrase it gently.",
		Prompt:  "If a close friend had lived your day, what would you say to them tonight?",
	},
	{
		ID:      "body-first",
		Tone:    "grounding",
		Advice:  "The body keeps the score before the mind notices. Check in with it first.",
		Mission: "Take three slow breaths before your next meal.",
		Prompt:  "How did your body feel today - tense, tired, light? When did that change?",
	},
	{
		ID:      "connection",
		Tone:    "warm",
		Advice:  "One honest sentence to another person can carry a whole day.",
		Mission: "Send a short message to someone you thought about today.",
		Prompt:  "Who did you feel closest to today, and what made that moment happen?",
	},
	{
		ID:      "let-go",
		Tone:    "calming",
		Advice:  "Not everything that happened today needs a verdict tonight.",
		Mission: "Write down one worry, then close the notebook on it until tomorrow.",
		Prompt:  "What is one thing from today you are ready to set down before sleeping?",
	},
	{
		ID:      "energy-map",
		Tone:    "curious",
		Advice:  "Energy leaks are quieter than energy drains. Watch where yours went.",
		Mission: "Note the hour of today when you felt most awake.",
		Prompt:  "What gave you energy today, and what quietly took it away?",
	},
	{
		ID:      "future-self",
		Tone:    "encouraging",
		Advice:  "Tomorrow's mood is partly tonight's decision.",
		Mission: "Prepare one small thing tonight that will make tomorrow morning easier.",
		Prompt:  "What would tomorrow-you thank today-you for writing down?",
	},
}
