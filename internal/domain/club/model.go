package club

import "fmt"

// Club is a basketball club fielding players and competing in games.
type Club struct {
	ID   int64
	Code string
	Name string
	City string
}

func (c Club) Validate() error {
	if c.Code == "" {
		return fmt.Errorf("club code is required")
	}
	if c.Name == "" {
		return fmt.Errorf("club name is required")
	}

	return nil
}
