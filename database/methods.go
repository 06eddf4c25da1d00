package database

import (
	"encoding/json"
	"time"
)

func (c *Campaign) GoalReached() bool {
	return c.AmountRaised >= c.GoalAmount
}

func (c *Campaign) Expired(now time.Time) bool {
	return now.After(c.Deadline)
}

// Withdrawal is only allowed once the goal has been met or the deadline
// has passed
func (c *Campaign) Withdrawable(now time.Time) bool {
	return c.GoalReached() || c.Expired(now)
}

func (e *LedgerEntry) DecodeData() (map[string]interface{}, error) {
	if len(e.Data) == 0 {
		return nil, nil
	}
	var data map[string]interface{}
	err := json.Unmarshal([]byte(e.Data), &data)
	return data, err
}
