package league

// League is a domestic competition tier hosting clubs and games.
type League struct {
	ID      int64
	Code    string
	Name    string
	Country string
	Level   string
}
