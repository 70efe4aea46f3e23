package models

// Message is a short text post authored by an account. Text and timestamp
// may change via update; the poster never does.
type Message struct {
	MessageID       int    `json:"message_id"`
	PostedBy        int    `json:"posted_by"`
	MessageText     string `json:"message_text"`
	TimePostedEpoch int64  `json:"time_posted_epoch"`
}
