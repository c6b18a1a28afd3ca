package team

import (
	"fmt"
	"time"
)

// Team is one club side (typically an age-group squad) whose matches are
// logged and analyzed.
type Team struct {
	ID        string
	Name      string
	AgeGroup  string
	Season    string
	CreatedAt time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
