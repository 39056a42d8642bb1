package emotion

// Label identifies a coarse affect category inferred from keyword presence.
type Label string

const (
	Happy     Label = "happy"
	Sad       Label = "sad"
	Anxious   Label = "anxious"
	Confident Label = "confident"
	Confused  Label = "confused"
	Pain      Label = "pain"
	Tired     Label = "tired"
	Worried   Label = "worried"
)

// Lexicon holds the keyword tables the analyzer scores against. It is
// read-only after construction and safe to share between analyzers.
type Lexicon struct {
	order     []Label
	keywords  map[Label][]string
	negations []string
	high      []string
	medium    []string
	low       []string
}

// DefaultLexicon returns the built-in English keyword tables. The category
// order is load-bearing: score ties keep the first-seen label.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		order: []Label{Happy, Sad, Anxious, Confident, Confused, Pain, Tired, Worried},
		keywords: map[Label][]string{
			Happy: {
				"happy", "good", "great", "amazing", "wonderful", "excellent", "love",
				"awesome", "thrilled", "pleased", "delighted", "content", "grateful",
			},
			Sad: {
				"sad", "depressed", "unhappy", "upset", "down", "miserable", "crying",
				"hurt", "devastated", "blue", "low", "gloomy",
			},
			Anxious: {
				"worried", "anxious", "nervous", "scared", "afraid", "stressed",
				"stressed out", "panic", "tense", "uneasy", "concerned",
			},
			Confident: {
				"confident", "strong", "powerful", "brave", "courageous", "capable",
				"unstoppable", "empowered", "determined",
			},
			Confused: {
				"confused", "unsure", "lost", "help", "how to", "what do i",
				"what should i", "unclear", "puzzled", "question",
			},
			Pain: {
				"pain", "cramp", "cramps", "hurt", "ache", "sore", "discomfort",
				"hurts", "uncomfortable", "aching", "throbbing", "stabbing", "shooting",
			},
			Tired: {
				"tired", "fatigue", "exhausted", "weak", "drained", "sleepy", "lethargic",
			},
			Worried: {
				"worried", "concern", "normal", "okay", "alright", "fine", "uncertain",
			},
		},
		negations: []string{
			"not", "no", "don't", "doesn't", "won't", "can't", "never", "neither",
			"hardly", "barely",
		},
		high: []string{
			"very", "extremely", "incredibly", "severe", "severely", "unbearable",
			"intense", "terrible", "awful", "excruciating", "agonizing",
		},
		medium: []string{
			"quite", "rather", "fairly", "pretty", "moderately",
		},
		low: []string{
			"slightly", "a bit", "a little", "somewhat", "kinda", "sorta", "mild",
			"hardly",
		},
	}
}

// Labels returns the scoring order of emotion categories.
func (l *Lexicon) Labels() []Label {
	return l.order
}

// Keywords returns the keyword set for a label.
func (l *Lexicon) Keywords(label Label) []string {
	return l.keywords[label]
}
