package nationalteam

// NationalTeam is a country selection, grouped into a confederation
// (e.g. "FIBA Europe"). Players reference it loosely through their
// citizenship matching Country; there is no foreign key.
type NationalTeam struct {
	ID            int64
	Code          string
	Country       string
	Confederation string
}
