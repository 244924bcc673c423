package castaway

// Castaway is a contestant that can be drafted within one season.
type Castaway struct {
	ID       string
	SeasonID string
	Name     string
	Tribe    string
}
