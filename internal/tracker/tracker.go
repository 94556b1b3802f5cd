// Package tracker owns the application state of the order ledger: the
// in-memory order list and the editor form. All mutation goes through the
// defined CRUD and form operations; there is no ambient shared state.
package tracker

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/darazdesk/ledgerapi/internal/domain"
	"github.com/darazdesk/ledgerapi/internal/service"
	"github.com/darazdesk/ledgerapi/pkg/errors"
)

// FormState is the editor form's position in its lifecycle.
type FormState string

const (
	// FormClosed - no draft is open
	FormClosed FormState = "CLOSED"
	// FormNew - a blank draft is being edited; submit creates
	FormNew FormState = "NEW"
	// FormEdit - an existing order's copy is being edited; submit updates by the original id
	FormEdit FormState = "EDIT"
)

// IsValid checks if the form state is valid
func (s FormState) IsValid() bool {
	switch s {
	case FormClosed, FormNew, FormEdit:
		return true
	}
	return false
}

// Tracker is the single controller owning the order list and the editor
// form. It is synchronous and meant for a single goroutine, matching the
// single-threaded event-driven surface it backs.
type Tracker struct {
	svc    *service.OrderService
	logger *zap.Logger

	orders []domain.Order
	state  FormState
	draft  domain.Order
	editID string // id of the order being edited, empty for a new draft
}

func New(svc *service.OrderService, logger *zap.Logger) *Tracker {
	return &Tracker{
		svc:    svc,
		logger: logger,
		state:  FormClosed,
	}
}

// Refresh replaces the in-memory list wholesale with a full re-fetch.
func (t *Tracker) Refresh(ctx context.Context) error {
	orders, err := t.svc.List(ctx)
	if err != nil {
		return err
	}
	t.orders = orders
	return nil
}

// Orders returns the current in-memory list.
func (t *Tracker) Orders() []domain.Order {
	return t.orders
}

// State returns the editor form state.
func (t *Tracker) State() FormState {
	return t.state
}

// Draft returns the open draft. Meaningful only while the form is open.
func (t *Tracker) Draft() domain.Order {
	return t.draft
}

// OpenNew opens the form with a blank draft holding one empty product row.
func (t *Tracker) OpenNew() {
	t.state = FormNew
	t.draft = domain.NewDraft()
	t.editID = ""
}

// OpenEdit opens the form with a copy of the listed order addressed by id.
func (t *Tracker) OpenEdit(id string) error {
	for _, order := range t.orders {
		if order.ID.Hex() == id {
			t.state = FormEdit
			t.draft = domain.Calculate(order)
			t.editID = id
			return nil
		}
	}
	return &errors.ErrNotFound{Resource: "order", ID: id}
}

// SetDraft replaces the open draft with an edited version, normalized by the
// calculator. This is the per-field-change hook of the form.
func (t *Tracker) SetDraft(draft domain.Order) {
	if t.state == FormClosed {
		return
	}
	t.draft = domain.Calculate(draft)
}

// AddProduct appends an empty product row to the open draft.
func (t *Tracker) AddProduct() {
	if t.state == FormClosed {
		return
	}
	t.draft.Products = append(t.draft.Products, domain.Product{})
}

// RemoveProduct removes the product row at index i. The last remaining row
// cannot be removed.
func (t *Tracker) RemoveProduct(i int) error {
	if t.state == FormClosed {
		return &errors.ErrValidation{Message: "no open form"}
	}
	if len(t.draft.Products) <= 1 {
		return &errors.ErrValidation{
			Message: "an order keeps at least one product row",
			Fields:  map[string]string{"products": "last row"},
		}
	}
	if i < 0 || i >= len(t.draft.Products) {
		return &errors.ErrValidation{Message: "product index out of range"}
	}
	t.draft.Products = append(t.draft.Products[:i], t.draft.Products[i+1:]...)
	t.draft = domain.Calculate(t.draft)
	return nil
}

// Submit persists the open draft: create for a new draft, update by the
// original id for an edit. A successful submit closes the form and refreshes
// the list; a failed one is logged and leaves the form open with the draft
// intact so the user can retry.
func (t *Tracker) Submit(ctx context.Context) error {
	switch t.state {
	case FormNew:
		if _, err := t.svc.Create(ctx, t.draft); err != nil {
			t.logger.Error("Submit failed, form left open", zap.Error(err))
			return err
		}
	case FormEdit:
		if _, err := t.svc.Update(ctx, t.editID, t.draft); err != nil {
			t.logger.Error("Submit failed, form left open", zap.String("order_id", t.editID), zap.Error(err))
			return err
		}
	default:
		return &errors.ErrValidation{Message: "no open form"}
	}

	t.close()
	return t.Refresh(ctx)
}

// Cancel closes the form and discards the draft.
func (t *Tracker) Cancel() {
	t.close()
}

// Delete removes the order addressed by id through the confirmation-gated
// service call and refreshes the list only after a confirmed, successful
// delete.
func (t *Tracker) Delete(ctx context.Context, id string, confirmed bool) error {
	if err := t.svc.Delete(ctx, id, confirmed); err != nil {
		return err
	}
	return t.Refresh(ctx)
}

// Export writes the current in-memory list as a workbook to w.
func (t *Tracker) Export(w io.Writer) error {
	return t.svc.Export(t.orders, w)
}

func (t *Tracker) close() {
	t.state = FormClosed
	t.draft = domain.Order{}
	t.editID = ""
}
