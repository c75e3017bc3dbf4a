package model

import "time"

// QueueEntry associates a customer with a show they saved to watch
// later.  The `queue` table's primary key is (cust_id, show_id), so a
// show appears at most once per customer.
type QueueEntry struct {
	CustID     uint64    // queue.cust_id
	ShowID     uint64    // queue.show_id
	ShowTitle  string    // shows.title (joined for display)
	DateQueued time.Time // queue.date_queued
}
