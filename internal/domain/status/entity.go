package status

import "time"

// StatusID identifier type
type StatusID string

// StatusCheck is a liveness ping recorded by a monitoring client.
type StatusCheck struct {
	ID         StatusID  `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}
