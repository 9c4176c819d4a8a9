package player

import (
	"fmt"
	"time"
)

// Player is an athlete in the reference pool, optionally attached to a club.
type Player struct {
	ID          int64
	Code        string
	Name        string
	DateOfBirth time.Time
	Height      *float64
	Citizenship string
	ClubID      *int64
}

func (p Player) Validate() error {
	if p.Code == "" {
		return fmt.Errorf("player code is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.DateOfBirth.IsZero() {
		return fmt.Errorf("player date of birth is required")
	}
	if p.Height != nil && *p.Height <= 0 {
		return fmt.Errorf("player height must be greater than zero")
	}

	return nil
}

// Filter narrows player listings. Zero-value fields leave the dimension open.
type Filter struct {
	NameContains  string
	ClubID        *int64
	Citizenship   string
	Confederation string
}
