package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/darazdesk/ledgerapi/internal/domain"
	"github.com/darazdesk/ledgerapi/internal/repository/memory"
	"github.com/darazdesk/ledgerapi/pkg/errors"
)

func TestExportEmptyListWritesNothing(t *testing.T) {
	svc := NewOrderService(memory.NewRepositories(), zap.NewNop())

	var buf bytes.Buffer
	err := svc.Export(nil, &buf)
	require.Error(t, err)
	_, ok := err.(*errors.ErrNothingToExport)
	assert.True(t, ok, "want ErrNothingToExport, got %T", err)
	assert.Equal(t, "nothing to export", err.Error())
	assert.Zero(t, buf.Len(), "no bytes may be written for an empty list")
}

func TestExportWorkbookRows(t *testing.T) {
	svc := NewOrderService(memory.NewRepositories(), zap.NewNop())

	orders := []domain.Order{
		{
			OrderID:         "DRZ-1001",
			DateTime:        "2024-05-01 10:00",
			GrossSale:       "1000",
			NetSales:        "800",
			DarazCommission: "200",
			Profit:          "300",
			Payment:         "cod",
			Products: []domain.Product{
				{Name: "A", PurchasingPrice: "100", UnitsSold: "2", List: "electronics"},
				{Name: "B", PurchasingPrice: "50", UnitsSold: "1", List: "accessories"},
			},
		},
		{
			OrderID:  "DRZ-1002",
			NetSales: "300",
			Loss:     "200",
			Products: []domain.Product{{Name: "C", UnitsSold: "4"}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, svc.Export(orders, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{ExportSheetName}, f.GetSheetList())

	rows, err := f.GetRows(ExportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"Order ID", "Date/Time", "Gross Sale", "Net Sale",
		"Daraz Commission", "Profit", "Loss", "Payment", "Products",
	}, rows[0])

	assert.Equal(t, "DRZ-1001", rows[1][0])
	assert.Equal(t, "200", rows[1][4])
	assert.Equal(t, "A(2) | B(1)", rows[1][8])

	assert.Equal(t, "DRZ-1002", rows[2][0])
	assert.Equal(t, "C(4)", rows[2][8])
}

func TestProductsCellPreservesOrder(t *testing.T) {
	products := []domain.Product{
		{Name: "A", UnitsSold: "2"},
		{Name: "B", UnitsSold: "1"},
	}
	assert.Equal(t, "A(2) | B(1)", ProductsCell(products))
	assert.Equal(t, "", ProductsCell(nil))
}
