package respond

import "github.com/jeesuva/companion/backend/internal/analysis/emotion"

type prefixSet struct {
	high, medium, low string
}

func (p prefixSet) pick(intensity emotion.Intensity) string {
	switch intensity {
	case emotion.IntensityHigh:
		return p.high
	case emotion.IntensityLow:
		return p.low
	default:
		return p.medium
	}
}

var emotionPrefixes = map[emotion.Label]prefixSet{
	emotion.Happy: {
		high:   "That's AMAZING to hear! I'm so thrilled for you! 🎉🎉",
		medium: "That's wonderful to hear! I'm happy for you! 🎉",
		low:    "That's nice! I'm glad! 😊",
	},
	emotion.Sad: {
		high:   "I can see you're going through something really difficult. I'm right here with you. 💙",
		medium: "I hear that you're going through a tough time. I'm here for you. 💙",
		low:    "I understand you're feeling down. You're not alone. 💙",
	},
	emotion.Anxious: {
		high:   "I can feel your anxiety is intense. Take a deep breath - you're safe. You're not alone. 💚",
		medium: "I understand you're feeling anxious. Take a deep breath - you're not alone. 💚",
		low:    "I see you're a bit worried. That's okay! I'm here. 💚",
	},
	emotion.Confident: {
		high:   "I LOVE your fierce confidence! You're unstoppable! 💪🔥",
		medium: "I love your confidence! You've got this! 💪",
		low:    "You're building confidence! That's awesome! 💪",
	},
	emotion.Confused: {
		high:   "I can see you're really confused about this. No worries, let me explain clearly! 🤗",
		medium: "Don't worry, let me help clarify things for you. 🤗",
		low:    "That's a fair question! Let me help. 🤗",
	},
	emotion.Pain: {
		high:   "I'm truly sorry - severe pain is really difficult. You deserve relief and support. 💙",
		medium: "I'm truly sorry you're in pain. Let me help you find relief. 💙",
		low:    "I hear you're uncomfortable. Let's ease this. 💙",
	},
	emotion.Worried: {
		high:   "I understand these concerns feel overwhelming. Let me address them fully for you. 💕",
		medium: "I understand your concerns. Let me address them for you. 💕",
		low:    "You have a valid question. Let me explain. 💕",
	},
}

// genericPrefixes covers emotions without a dedicated entry (tired, for one).
var genericPrefixes = prefixSet{
	high:   "I'm absolutely here to support you! 💙",
	medium: "I'm here to support you! 💙",
	low:    "I'm here to help! 💙",
}

// EmotionalPrefix returns the empathy line prepended to a composed response
// when an emotion was detected. Unknown intensities fall back to medium.
func EmotionalPrefix(label emotion.Label, intensity emotion.Intensity) string {
	set, ok := emotionPrefixes[label]
	if !ok {
		set = genericPrefixes
	}
	return set.pick(intensity)
}
