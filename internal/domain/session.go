package domain

// Session is the client's persisted identity: exactly one per running client,
// written on login/refresh and cleared on logout or auth failure.
type Session struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	UserType string `json:"user_type"`
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}

func (s Session) IsAdmin() bool {
	return s.UserType == "admin"
}
