package model

// Actor is a performer as stored in the `actor` table.
type Actor struct {
	ActID     uint64 // actor.act_id
	FirstName string // actor.fname
	LastName  string // actor.lname
}
