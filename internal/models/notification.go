package models

// NotificationOutcome records one recipient's delivery result, persisted
// for audit alongside the reset that produced it.
type NotificationOutcome struct {
	Username    string `json:"username"`
	Achievement string `json:"achievement"`
	Delivered   bool   `json:"delivered"`
	Error       string `json:"error,omitempty"`
}
