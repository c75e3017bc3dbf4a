package model

import "time"

// Episode is a single installment of a show.  Episode ids are unique
// across the catalog and ascend within a show, which makes them the
// stable listing order.
type Episode struct {
	ShowID    uint64    // episode.show_id
	EpisodeID uint64    // episode.episode_id
	Title     string    // episode.title
	AirDate   time.Time // episode.airdate
}
