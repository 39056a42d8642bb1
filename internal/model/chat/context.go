package chat

// UserContext carries the caller-supplied identity used for response
// personalization and cache keying. Only UserID and UserName change
// behavior; age and preferences are recorded for future use.
type UserContext struct {
	UserID      string            `json:"userId"`
	UserName    string            `json:"userName,omitempty"`
	Age         int               `json:"age,omitempty"`
	Preferences map[string]string `json:"preferences,omitempty"`
}

// GuestID keys cached responses for anonymous callers.
const GuestID = "guest"

// NewUserContext normalizes a user context, defaulting the display name to
// the generic placeholder when none was provided.
func NewUserContext(userID, userName string) UserContext {
	if userName == "" {
		userName = "Friend"
	}
	return UserContext{UserID: userID, UserName: userName}
}
