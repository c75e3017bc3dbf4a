package repository

import (
	"context"

	"github.com/hotsauce86/Stream-TV/internal/database"
	"github.com/hotsauce86/Stream-TV/internal/model"
)

// ActorRepo manages catalog reads for actors.
type ActorRepo struct {
	d *database.Dispatcher
}

// NewActorRepo constructs an ActorRepo over the statement dispatcher.
func NewActorRepo(d *database.Dispatcher) *ActorRepo {
	return &ActorRepo{d: d}
}

// GetActor retrieves an actor by id, or ErrNotFound.
func (r *ActorRepo) GetActor(ctx context.Context, actID uint64) (model.Actor, error) {
	const q = `SELECT act_id, fname, lname FROM actor WHERE act_id = ?`
	res, err := r.d.Run(ctx, database.KindQuery, q, actID)
	if err != nil {
		return model.Actor{}, err
	}
	defer res.Rows.Close()

	if !res.Rows.Next() {
		if err := res.Rows.Err(); err != nil {
			return model.Actor{}, err
		}
		return model.Actor{}, ErrNotFound
	}
	var a model.Actor
	if err := res.Rows.Scan(&a.ActID, &a.FirstName, &a.LastName); err != nil {
		return model.Actor{}, err
	}
	return a, nil
}
