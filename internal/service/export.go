package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/darazdesk/ledgerapi/internal/domain"
	"github.com/darazdesk/ledgerapi/pkg/errors"
)

const (
	// ExportSheetName is the single sheet of the exported workbook.
	ExportSheetName = "Orders"
	// ExportFileName is the download/file name of the exported workbook.
	ExportFileName = "orders.xlsx"
)

var exportHeader = []interface{}{
	"Order ID", "Date/Time", "Gross Sale", "Net Sale",
	"Daraz Commission", "Profit", "Loss", "Payment", "Products",
}

// Export writes the order list as an .xlsx workbook to w. An empty list is
// reported as nothing-to-export before any workbook is built; no bytes are
// written in that case.
func (s *OrderService) Export(orders []domain.Order, w io.Writer) error {
	f, err := s.Workbook(orders)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return &errors.ErrPersistence{Op: "export", Err: err}
	}
	return nil
}

// Workbook builds the "Orders" workbook: one flat row per order, products
// joined into a single text column. The projection is lossy (it drops
// purchasingPrice and list per product) and one-way.
func (s *OrderService) Workbook(orders []domain.Order) (*excelize.File, error) {
	if len(orders) == 0 {
		return nil, &errors.ErrNothingToExport{}
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", ExportSheetName); err != nil {
		f.Close()
		return nil, err
	}

	if err := f.SetSheetRow(ExportSheetName, "A1", &exportHeader); err != nil {
		f.Close()
		return nil, err
	}

	for i, order := range orders {
		row := []interface{}{
			order.OrderID,
			order.DateTime,
			string(order.GrossSale),
			string(order.NetSales),
			string(order.DarazCommission),
			string(order.Profit),
			string(order.Loss),
			order.Payment,
			ProductsCell(order.Products),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(ExportSheetName, cell, &row); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

// ProductsCell joins the product rows as "name(unitsSold)" separated by
// " | ", preserving product order.
func ProductsCell(products []domain.Product) string {
	parts := make([]string, 0, len(products))
	for _, p := range products {
		parts = append(parts, fmt.Sprintf("%s(%s)", p.Name, p.UnitsSold))
	}
	return strings.Join(parts, " | ")
}
