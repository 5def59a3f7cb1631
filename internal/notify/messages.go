package notify

import (
	"encoding/json"
	"time"
)

// ExpiryAlert is the message published for an item about to expire.
type ExpiryAlert struct {
	ItemID     string    `json:"itemId"`
	UserID     string    `json:"userId"`
	Name       string    `json:"name"`
	ExpiryDate string    `json:"expiryDate"`
	DaysLeft   int       `json:"daysLeft"`
	Timestamp  time.Time `json:"timestamp"`
}

func (a ExpiryAlert) ToJSON() ([]byte, error) {
	return json.Marshal(a)
}
