package model

// CastRole distinguishes the two cast-assignment tables.  The value
// selects which table a cast lookup joins through; it is never
// interpolated into SQL directly.
type CastRole string

const (
	// CastMain selects the `main_cast` table.
	CastMain CastRole = "main"
	// CastRecurring selects the `recurring_cast` table.
	CastRecurring CastRole = "recurring"
)

// CastMember is one actor's assignment to a show, joined through
// either main_cast or recurring_cast.
//
// Fields:
//  ActID     – performer identifier.
//  FirstName – performer given name.
//  LastName  – performer family name.
//  Role      – character played in the show.
//  Billing   – which cast table the assignment came from.
type CastMember struct {
	ActID     uint64   // actor.act_id
	FirstName string   // actor.fname
	LastName  string   // actor.lname
	Role      string   // main_cast.role / recurring_cast.role
	Billing   CastRole // main or recurring
}
