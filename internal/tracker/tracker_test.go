package tracker

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/darazdesk/ledgerapi/internal/domain"
	"github.com/darazdesk/ledgerapi/internal/repository/memory"
	"github.com/darazdesk/ledgerapi/internal/service"
	"github.com/darazdesk/ledgerapi/pkg/errors"
)

func newTestTracker() *Tracker {
	svc := service.NewOrderService(memory.NewRepositories(), zap.NewNop())
	return New(svc, zap.NewNop())
}

func fillDraft(t *Tracker) {
	draft := t.Draft()
	draft.OrderID = "DRZ-1001"
	draft.GrossSale = "1000"
	draft.NetSales = "800"
	draft.Payment = "cod"
	draft.Products[0] = domain.Product{Name: "Charger", PurchasingPrice: "100", UnitsSold: "5"}
	t.SetDraft(draft)
}

func TestOpenNewHasOneEmptyProductRow(t *testing.T) {
	tr := newTestTracker()

	tr.OpenNew()
	assert.Equal(t, FormNew, tr.State())
	require.Len(t, tr.Draft().Products, 1)
	assert.Equal(t, domain.Product{}, tr.Draft().Products[0])
}

func TestSetDraftRunsCalculator(t *testing.T) {
	tr := newTestTracker()
	tr.OpenNew()
	fillDraft(tr)

	assert.Equal(t, domain.Numeric("200"), tr.Draft().DarazCommission)
	assert.Equal(t, domain.Numeric("300"), tr.Draft().Profit)
}

func TestSubmitNewClosesAndRefreshes(t *testing.T) {
	tr := newTestTracker()
	ctx := context.Background()

	tr.OpenNew()
	fillDraft(tr)
	require.NoError(t, tr.Submit(ctx))

	assert.Equal(t, FormClosed, tr.State())
	require.Len(t, tr.Orders(), 1)
	assert.Equal(t, "DRZ-1001", tr.Orders()[0].OrderID)
	assert.False(t, tr.Orders()[0].ID.IsZero())
}

func TestFailedSubmitLeavesFormOpen(t *testing.T) {
	tr := newTestTracker()
	ctx := context.Background()

	tr.OpenNew()
	draft := tr.Draft()
	draft.Products = nil // invalid: the service rejects an empty product list
	tr.draft = draft

	err := tr.Submit(ctx)
	require.Error(t, err)
	assert.Equal(t, FormNew, tr.State(), "form stays open after a failed submit")
	assert.Empty(t, tr.Orders())
}

func TestSubmitEditPreservesID(t *testing.T) {
	tr := newTestTracker()
	ctx := context.Background()

	tr.OpenNew()
	fillDraft(tr)
	require.NoError(t, tr.Submit(ctx))
	id := tr.Orders()[0].ID

	require.NoError(t, tr.OpenEdit(id.Hex()))
	assert.Equal(t, FormEdit, tr.State())

	draft := tr.Draft()
	draft.NetSales = "300"
	tr.SetDraft(draft)
	require.NoError(t, tr.Submit(ctx))

	require.Len(t, tr.Orders(), 1)
	assert.Equal(t, id, tr.Orders()[0].ID, "submitting an edit never changes the id")
	assert.Equal(t, domain.Numeric("200"), tr.Orders()[0].Loss)
}

func TestOpenEditUnknownID(t *testing.T) {
	tr := newTestTracker()

	err := tr.OpenEdit("64f000000000000000000000")
	require.Error(t, err)
	_, ok := err.(*errors.ErrNotFound)
	assert.True(t, ok)
	assert.Equal(t, FormClosed, tr.State())
}

func TestCancelDiscardsDraft(t *testing.T) {
	tr := newTestTracker()

	tr.OpenNew()
	fillDraft(tr)
	tr.Cancel()

	assert.Equal(t, FormClosed, tr.State())
	assert.Empty(t, tr.Orders())
}

func TestProductRows(t *testing.T) {
	tr := newTestTracker()
	tr.OpenNew()

	err := tr.RemoveProduct(0)
	require.Error(t, err, "the last product row cannot be removed")

	tr.AddProduct()
	require.Len(t, tr.Draft().Products, 2)

	require.NoError(t, tr.RemoveProduct(1))
	require.Len(t, tr.Draft().Products, 1)

	assert.Error(t, tr.RemoveProduct(5))
}

func TestDeleteGoesThroughConfirmation(t *testing.T) {
	tr := newTestTracker()
	ctx := context.Background()

	tr.OpenNew()
	fillDraft(tr)
	require.NoError(t, tr.Submit(ctx))
	id := tr.Orders()[0].ID.Hex()

	err := tr.Delete(ctx, id, false)
	require.Error(t, err)
	assert.Len(t, tr.Orders(), 1, "unconfirmed delete leaves the list unchanged")

	require.NoError(t, tr.Delete(ctx, id, true))
	assert.Empty(t, tr.Orders())
}

func TestExportCurrentList(t *testing.T) {
	tr := newTestTracker()
	ctx := context.Background()

	var buf bytes.Buffer
	err := tr.Export(&buf)
	_, ok := err.(*errors.ErrNothingToExport)
	assert.True(t, ok, "empty list reports nothing to export")

	tr.OpenNew()
	fillDraft(tr)
	require.NoError(t, tr.Submit(ctx))

	buf.Reset()
	require.NoError(t, tr.Export(&buf))
	assert.NotZero(t, buf.Len())
}
