package championship

// Championship is a national-team competition (world cup, continental
// tournament) hosting games the way a league does.
type Championship struct {
	ID   int64
	Code string
	Name string
	Year int
	Type string
}
