package respond

import "strings"

// PlaceholderName is the display name assigned to users who never shared one.
// It must never leak into a personalized response.
const PlaceholderName = "Friend"

// Personalize rewrites a fixed set of encouragement phrases to address the
// user by name. Every occurrence is rewritten, not just the first, so the
// output is stable for caching. Returns the body unchanged when no usable
// name is available.
func Personalize(body, userName string) string {
	if userName == "" || userName == PlaceholderName {
		return body
	}
	body = strings.ReplaceAll(body, "You deserve", userName+", you deserve")
	body = strings.ReplaceAll(body, "You can", userName+", you can")
	body = strings.ReplaceAll(body, "Your period", userName+", your period")
	return body
}
