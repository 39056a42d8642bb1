package respond

import "strings"

var followUpHints = []struct {
	key  string
	text string
}{
	{"pain", "\n💡 **Next question?** Would you like tips for managing pain at school or work?"},
	{"myth", "\n💡 **Next question?** Do you want to know about exercise or other misconceptions?"},
	{"school", "\n💡 **Next question?** How to talk to teachers or manage symptoms at school?"},
	{"herbal", "\n💡 **Next question?** Interested in nutrition tips or other remedies?"},
	{"heating", "\n💡 **Next question?** Want to know about our herbal sachets or other products?"},
	{"home", "\n💡 **Next question?** Tips for comfort at home or with family?"},
}

const genericFollowUp = "\n💡 **Next question?** What else can I help you with today?"

// SuggestedFollowUp returns a conversational nudge matched by substring
// against the topic label, or a generic one.
func SuggestedFollowUp(topicKeyword string) string {
	for _, hint := range followUpHints {
		if strings.Contains(topicKeyword, hint.key) {
			return hint.text
		}
	}
	return genericFollowUp
}

var suggestedQuestions = map[string][]string{
	"pain": {
		"What helps with menstrual pain?",
		"How long does pain usually last?",
		"When should I see a doctor?",
		"Can I take medicine?",
	},
	"myths": {
		"Can I exercise during my period?",
		"Are there real health precautions?",
		"What about cultural beliefs?",
		"Can I swim during my period?",
	},
	"school": {
		"How to manage symptoms at school?",
		"Should I tell my teacher?",
		"Tips for concentration during period?",
		"What if I need the restroom often?",
	},
	"herbal": {
		"What are the ingredients?",
		"How to use properly?",
		"Are there side effects?",
		"How long does it take to work?",
	},
	"heating": {
		"How long does it last?",
		"Is it safe?",
		"Can I use it at school?",
		"How many times is it reusable?",
	},
	"general": {
		"What is Jeesuva?",
		"How does it work?",
		"Is it affordable?",
		"Is it eco-friendly?",
	},
}

// SuggestedQuestions returns starter questions for a topic, defaulting to
// the general set.
func SuggestedQuestions(topic string) []string {
	if questions, ok := suggestedQuestions[topic]; ok {
		return questions
	}
	return suggestedQuestions["general"]
}
