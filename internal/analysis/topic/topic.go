// Package topic routes a message to one menstrual-health subject category.
//
// Unlike the emotion analyzer, which scores every category and keeps the
// best, routing is an ordered first-match walk: the rule order encodes
// priority (pain before the generic "how ... work", school before myths)
// and changing it changes behavior for messages matching several rules.
package topic

import "strings"

// Topic identifies which canned response template gets rendered.
type Topic string

const (
	Pain          Topic = "pain"
	HeatingPad    Topic = "heating"
	Herbal        Topic = "herbal"
	School        Topic = "school"
	Myths         Topic = "myths"
	MentalHealth  Topic = "mental-health"
	Bleeding      Topic = "bleeding"
	Harassment    Topic = "harassment"
	Affordability Topic = "affordability"
	Isolation     Topic = "isolation"
	PCOS          Topic = "pcos"
	Endometriosis Topic = "endometriosis"
	CycleTracking Topic = "cycle-tracking"
	Supplements   Topic = "supplements"
	Hygiene       Topic = "hygiene"
	Exercise      Topic = "exercise"
	Puberty       Topic = "puberty"
	Emergency     Topic = "emergency"
)

type rule struct {
	topic Topic
	match func(lower string) bool
}

// rules is evaluated top to bottom; the first hit wins.
var rules = []rule{
	{Pain, anyOf("pain", "cramp", "ache")},
	{HeatingPad, func(m string) bool {
		return strings.Contains(m, "heating pad") || allOf("how", "work")(m)
	}},
	{Herbal, anyOf("herbal", "sachet", "ingredient")},
	{School, anyOf("school", "class", "attend", "exam")},
	{Myths, anyOf("myth", "temple", "restrict", "impure")},
	{MentalHealth, anyOf("depression", "anxiety", "mood", "sad")},
	{Bleeding, anyOf("heavy", "bleeding", "anemia", "weak", "fatigue")},
	{Harassment, anyOf("harassment", "bully", "ashamed", "tease")},
	{Affordability, anyOf("afford", "poor", "can't afford", "expensive")},
	{Isolation, anyOf("isolat", "alone", "secret", "hiding", "lonely")},
	{PCOS, func(m string) bool {
		return anyOf("pcos", "polycystic", "facial hair")(m) ||
			allOf("irregular", "period")(m) || allOf("excess", "hair")(m)
	}},
	{Endometriosis, func(m string) bool {
		return anyOf("endometriosis", "endo", "infertility")(m) ||
			allOf("painful", "sex")(m)
	}},
	{CycleTracking, anyOf("track", "cycle", "ovulation", "fertile", "calendar")},
	{Supplements, func(m string) bool {
		return anyOf("supplement", "vitamin", "mineral", "magnesium", "iron")(m) ||
			allOf("what", "take")(m)
	}},
	{Hygiene, anyOf("hygiene", "clean", "wash", "tampon", "pad", "cup")},
	{Exercise, anyOf("exercise", "workout", "sport", "yoga", "run", "swim")},
	{Puberty, func(m string) bool {
		return anyOf("first period", "puberty", "menarche", "age")(m) ||
			allOf("when", "start")(m)
	}},
	{Emergency, func(m string) bool {
		return anyOf("emergency", "doctor", "hospital", "tss", "toxic shock")(m) ||
			allOf("when", "see")(m)
	}},
}

// Route returns the first topic whose rule matches the message, or false
// when nothing matches and the caller should fall back elsewhere.
func Route(message string) (Topic, bool) {
	lower := strings.ToLower(message)
	for _, r := range rules {
		if r.match(lower) {
			return r.topic, true
		}
	}
	return "", false
}

// SeverePain reports whether the message asks about severe rather than
// routine pain, selecting the escalated pain template.
func SeverePain(message string) bool {
	lower := strings.ToLower(message)
	return strings.Contains(lower, "severe") || strings.Contains(lower, "unbearable")
}

func anyOf(terms ...string) func(string) bool {
	return func(lower string) bool {
		for _, term := range terms {
			if strings.Contains(lower, term) {
				return true
			}
		}
		return false
	}
}

func allOf(terms ...string) func(string) bool {
	return func(lower string) bool {
		for _, term := range terms {
			if !strings.Contains(lower, term) {
				return false
			}
		}
		return true
	}
}
