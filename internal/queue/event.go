// Package queue defines message payloads exchanged over the message
// broker.
package queue

// ShowQueuedName is the broker queue the event is published to and
// consumed from.
const ShowQueuedName = "queue.show_added"

// ShowQueuedEvent is published when a customer adds a show to their
// watch queue.  It carries enough for downstream consumers to log or
// feed analytics without querying the primary database.
type ShowQueuedEvent struct {
	CustID    uint64 `json:"cust_id"`
	Username  string `json:"username"`
	ShowID    uint64 `json:"show_id"`
	ShowTitle string `json:"show_title"`
	QueuedAt  string `json:"queued_at"`
}
