package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hotsauce86/Stream-TV/internal/middleware"
	"github.com/hotsauce86/Stream-TV/internal/model"
	"github.com/hotsauce86/Stream-TV/internal/queue"
	"github.com/hotsauce86/Stream-TV/internal/repository"
)

// QueueEventPublisher announces queue additions to the broker.  A nil
// publisher disables the announcements without affecting the queue
// itself.
type QueueEventPublisher interface {
	PublishShowQueued(ctx context.Context, ev queue.ShowQueuedEvent) error
}

// QueueHandler serves the watch-queue pages.
type QueueHandler struct {
	Queue     QueueStore
	Shows     CatalogStore
	Publisher QueueEventPublisher
}

// NewQueueHandler constructs a QueueHandler.
func NewQueueHandler(q QueueStore, shows CatalogStore, pub QueueEventPublisher) *QueueHandler {
	return &QueueHandler{Queue: q, Shows: shows, Publisher: pub}
}

// queuePage is the view-model for the queue listing.
type queuePage struct {
	basePage
	Entries []model.QueueEntry
}

// List renders a customer's watch queue, most recently queued first.
// The path id must match the authenticated session; anyone else gets
// the not-found state, so queue URLs reveal nothing about other
// customers.
func (h *QueueHandler) List(c echo.Context) error {
	custID, ok := pathID(c, "custID")
	if !ok {
		return renderNotFound(c, pageFor(c, ""), "No such queue.")
	}
	sess := middleware.CurrentSession(c)
	if !sess.Authenticated || sess.CustID != custID {
		return renderNotFound(c, pageFor(c, ""), "No such queue.")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	entries, err := h.Queue.ListForCustomer(ctx, custID)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "queue", queuePage{
		basePage: pageFor(c, "My Queue"),
		Entries:  entries,
	})
}

// Add queues a show for the authenticated customer and redirects to
// their queue.  Anonymous visitors are sent to the login page.  A
// show queued for the first time is announced on the broker;
// re-queuing is a silent no-op.
func (h *QueueHandler) Add(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	if !sess.Authenticated {
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	showID, ok := pathID(c, "showID")
	if !ok {
		return renderNotFound(c, pageFor(c, ""), "No such show.")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	show, err := h.Shows.GetShow(ctx, showID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return renderNotFound(c, pageFor(c, ""), "No such show.")
		}
		return err
	}

	added, err := h.Queue.Add(ctx, sess.CustID, showID)
	if err != nil {
		return err
	}
	if added && h.Publisher != nil {
		ev := queue.ShowQueuedEvent{
			CustID:    sess.CustID,
			Username:  sess.Username,
			ShowID:    show.ShowID,
			ShowTitle: show.Title,
			QueuedAt:  time.Now().UTC().Format(time.RFC3339),
		}
		// Broker trouble must not fail the request; the publisher
		// logs its own errors.
		go func() {
			pctx, pcancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer pcancel()
			_ = h.Publisher.PublishShowQueued(pctx, ev)
		}()
	}

	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/queue/%d", sess.CustID))
}
