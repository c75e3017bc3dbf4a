package repository

import (
	"context"

	"github.com/hotsauce86/Stream-TV/internal/database"
	"github.com/hotsauce86/Stream-TV/internal/model"
)

// QueueRepo manages each customer's watch queue.
type QueueRepo struct {
	d *database.Dispatcher
}

// NewQueueRepo constructs a QueueRepo over the statement dispatcher.
func NewQueueRepo(d *database.Dispatcher) *QueueRepo {
	return &QueueRepo{d: d}
}

// ListForCustomer returns the customer's queued shows, most recently
// queued first.  A customer with nothing queued gets an empty slice.
func (r *QueueRepo) ListForCustomer(ctx context.Context, custID uint64) ([]model.QueueEntry, error) {
	const q = `SELECT qu.cust_id, qu.show_id, s.title, qu.date_queued
	           FROM queue qu
	           JOIN shows s ON s.show_id = qu.show_id
	           WHERE qu.cust_id = ?
	           ORDER BY qu.date_queued DESC`
	res, err := r.d.Run(ctx, database.KindQuery, q, custID)
	if err != nil {
		return nil, err
	}
	defer res.Rows.Close()

	out := make([]model.QueueEntry, 0)
	for res.Rows.Next() {
		var e model.QueueEntry
		if err := res.Rows.Scan(&e.CustID, &e.ShowID, &e.ShowTitle, &e.DateQueued); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := res.Rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Add queues a show for a customer, stamping the current time.  The
// primary key (cust_id, show_id) makes re-queuing a no-op; the bool
// reports whether a new row was actually written, so the caller can
// skip publishing a queued event for duplicates.
func (r *QueueRepo) Add(ctx context.Context, custID, showID uint64) (bool, error) {
	const q = `INSERT IGNORE INTO queue (cust_id, show_id, date_queued) VALUES (?, ?, NOW())`
	res, err := r.d.Run(ctx, database.KindExec, q, custID, showID)
	if err != nil {
		return false, err
	}
	return res.Affected > 0, nil
}
