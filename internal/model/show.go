package model

// Show represents a series in the catalog as stored in the `shows`
// table.  Shows are read-only from the application's perspective;
// the catalog is seeded out of band.
//
// Fields:
//  ShowID       – primary key identifier.
//  Title        – series title.
//  Network      – broadcasting network.
//  PremiereYear – year of first airing.
//  Creator      – series creator.
//  Category     – genre label.
type Show struct {
	ShowID       uint64 // shows.show_id
	Title        string // shows.title
	Network      string // shows.network
	PremiereYear uint16 // shows.premiere_year
	Creator      string // shows.creator
	Category     string // shows.category
}
