package respond

import (
	"strings"
	"testing"

	"github.com/jeesuva/companion/backend/internal/analysis/emotion"
	"github.com/jeesuva/companion/backend/internal/analysis/topic"
)

func TestSeverePainTemplateHasFourOrderedSteps(t *testing.T) {
	body := Compose(topic.Pain, "I have severe cramps")

	for _, step := range []string{
		"Use Jeesuva Heating Pad",
		"Take our Herbal Sachet",
		"Rest & Hydrate",
		"See a Doctor",
	} {
		if !strings.Contains(body, step) {
			t.Fatalf("severe pain template missing step %q", step)
		}
	}

	// Steps must appear in order.
	heating := strings.Index(body, "Use Jeesuva Heating Pad")
	herbal := strings.Index(body, "Take our Herbal Sachet")
	rest := strings.Index(body, "Rest & Hydrate")
	doctor := strings.Index(body, "See a Doctor")
	if !(heating < herbal && herbal < rest && rest < doctor) {
		t.Fatal("severe pain steps out of order")
	}
	if strings.Count(body, `class="step-item"`) != 4 {
		t.Fatal("expected exactly 4 steps in severe pain template")
	}
}

func TestRoutinePainTemplate(t *testing.T) {
	body := Compose(topic.Pain, "mild cramps today")
	if !strings.Contains(body, "Managing Period Pain") {
		t.Fatal("expected the routine pain template")
	}
	if strings.Contains(body, "Managing Severe Pain") {
		t.Fatal("routine pain must not use the severe variant")
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	first := Compose(topic.School, "school?")
	second := Compose(topic.School, "school?")
	if first != second {
		t.Fatal("composition must be deterministic")
	}
	if first == "" {
		t.Fatal("expected a non-empty school template")
	}
}

func TestAllTopicsHaveTemplates(t *testing.T) {
	topics := []topic.Topic{
		topic.Pain, topic.HeatingPad, topic.Herbal, topic.School, topic.Myths,
		topic.MentalHealth, topic.Bleeding, topic.Harassment, topic.Affordability,
		topic.Isolation, topic.PCOS, topic.Endometriosis, topic.CycleTracking,
		topic.Supplements, topic.Hygiene, topic.Exercise, topic.Puberty,
		topic.Emergency,
	}
	for _, tp := range topics {
		if Compose(tp, "x") == "" {
			t.Fatalf("topic %s has no template", tp)
		}
	}
}

func TestPersonalizeReplacesEveryOccurrence(t *testing.T) {
	body := "You deserve rest. You deserve care."
	got := Personalize(body, "Asha")
	if !strings.Contains(got, "Asha, you deserve rest.") {
		t.Fatalf("expected personalized phrase, got %q", got)
	}
	if strings.Contains(got, "You deserve") {
		t.Fatalf("residual unpersonalized phrase in %q", got)
	}
}

func TestPersonalizeSkipsPlaceholder(t *testing.T) {
	body := "You deserve rest."
	if got := Personalize(body, PlaceholderName); got != body {
		t.Fatalf("placeholder name must not personalize, got %q", got)
	}
	if got := Personalize(body, ""); got != body {
		t.Fatalf("empty name must not personalize, got %q", got)
	}
}

func TestEmotionalPrefixTable(t *testing.T) {
	high := EmotionalPrefix(emotion.Pain, emotion.IntensityHigh)
	if !strings.Contains(high, "severe pain") {
		t.Fatalf("unexpected pain/high prefix: %q", high)
	}

	// Unknown intensity falls back to medium.
	medium := EmotionalPrefix(emotion.Pain, emotion.IntensityNormal)
	if medium != EmotionalPrefix(emotion.Pain, emotion.IntensityMedium) {
		t.Fatal("unknown intensity should fall back to medium")
	}

	// Tired has no dedicated entry and uses the generic set.
	generic := EmotionalPrefix(emotion.Tired, emotion.IntensityLow)
	if generic != "I'm here to help! 💙" {
		t.Fatalf("unexpected generic prefix: %q", generic)
	}
}

func TestSuggestedFollowUpSubstringMatch(t *testing.T) {
	if got := SuggestedFollowUp("heating"); !strings.Contains(got, "herbal sachets") {
		t.Fatalf("unexpected heating follow-up: %q", got)
	}
	if got := SuggestedFollowUp("unknown-topic"); got != genericFollowUp {
		t.Fatalf("expected generic follow-up, got %q", got)
	}
}

func TestSuggestedQuestionsDefault(t *testing.T) {
	if got := SuggestedQuestions("pain"); len(got) != 4 {
		t.Fatalf("expected 4 pain questions, got %d", len(got))
	}
	got := SuggestedQuestions("nope")
	if len(got) == 0 || got[0] != "What is Jeesuva?" {
		t.Fatalf("expected general fallback, got %v", got)
	}
}
