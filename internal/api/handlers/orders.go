package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/darazdesk/ledgerapi/internal/config"
	"github.com/darazdesk/ledgerapi/internal/domain"
	"github.com/darazdesk/ledgerapi/internal/repository"
	"github.com/darazdesk/ledgerapi/internal/service"
	"github.com/darazdesk/ledgerapi/pkg/errors"
)

// ProductRequest is one product row of an order request. Numeric-looking
// fields are carried as raw text; blank and non-numeric values are legal.
type ProductRequest struct {
	Name            string `json:"name"`
	PurchasingPrice string `json:"purchasingPrice"`
	UnitsSold       string `json:"unitsSold"`
	List            string `json:"list"`
}

// OrderRequest carries the user-entered order fields. Derived fields are
// computed server-side and ignored if sent.
type OrderRequest struct {
	DateTime  string           `json:"dateTime"`
	OrderID   string           `json:"orderId"`
	Products  []ProductRequest `json:"products"`
	GrossSale string           `json:"grossSale"`
	NetSales  string           `json:"netSales"`
	Payment   string           `json:"payment"`
}

func (r OrderRequest) toDraft() domain.Order {
	products := make([]domain.Product, 0, len(r.Products))
	for _, p := range r.Products {
		products = append(products, domain.Product{
			Name:            p.Name,
			PurchasingPrice: domain.Numeric(p.PurchasingPrice),
			UnitsSold:       domain.Numeric(p.UnitsSold),
			List:            p.List,
		})
	}
	return domain.Order{
		DateTime:  r.DateTime,
		OrderID:   r.OrderID,
		Products:  products,
		GrossSale: domain.Numeric(r.GrossSale),
		NetSales:  domain.Numeric(r.NetSales),
		Payment:   r.Payment,
	}
}

// OrderResponse represents the order response
type OrderResponse struct {
	ID              string            `json:"id"`
	DateTime        string            `json:"dateTime"`
	OrderID         string            `json:"orderId"`
	Products        []ProductResponse `json:"products"`
	GrossSale       string            `json:"grossSale"`
	NetSales        string            `json:"netSales"`
	DarazCommission string            `json:"darazCommission"`
	Profit          string            `json:"profit"`
	Loss            string            `json:"loss"`
	Payment         string            `json:"payment"`
	CreatedAt       string            `json:"createdAt"`
	UpdatedAt       string            `json:"updatedAt"`
}

type ProductResponse struct {
	Name            string `json:"name"`
	PurchasingPrice string `json:"purchasingPrice"`
	UnitsSold       string `json:"unitsSold"`
	List            string `json:"list"`
}

func toOrderResponse(order domain.Order) OrderResponse {
	products := make([]ProductResponse, 0, len(order.Products))
	for _, p := range order.Products {
		products = append(products, ProductResponse{
			Name:            p.Name,
			PurchasingPrice: string(p.PurchasingPrice),
			UnitsSold:       string(p.UnitsSold),
			List:            p.List,
		})
	}
	return OrderResponse{
		ID:              order.ID.Hex(),
		DateTime:        order.DateTime,
		OrderID:         order.OrderID,
		Products:        products,
		GrossSale:       string(order.GrossSale),
		NetSales:        string(order.NetSales),
		DarazCommission: string(order.DarazCommission),
		Profit:          string(order.Profit),
		Loss:            string(order.Loss),
		Payment:         order.Payment,
		CreatedAt:       order.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       order.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// writeServiceError maps the typed service errors onto HTTP statuses.
func writeServiceError(c *gin.Context, logger *zap.Logger, err error) {
	switch e := err.(type) {
	case *errors.ErrValidation:
		c.JSON(http.StatusBadRequest, gin.H{"error": e.Error(), "fields": e.Fields})
	case *errors.ErrConfirmationRequired:
		c.JSON(http.StatusBadRequest, gin.H{"error": e.Error(), "confirm": false})
	case *errors.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": e.Error()})
	case *errors.ErrNothingToExport:
		c.JSON(http.StatusBadRequest, gin.H{"error": e.Error()})
	default:
		logger.Error("Request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// HandleListOrders handles GET /api/v1/orders
func HandleListOrders(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	svc := service.NewOrderService(repos, logger)
	return func(c *gin.Context) {
		orders, err := svc.List(c.Request.Context())
		if err != nil {
			writeServiceError(c, logger, err)
			return
		}

		responses := make([]OrderResponse, 0, len(orders))
		for _, order := range orders {
			responses = append(responses, toOrderResponse(order))
		}
		c.JSON(http.StatusOK, gin.H{"orders": responses, "count": len(responses)})
	}
}

// HandleCreateOrder handles POST /api/v1/orders
func HandleCreateOrder(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	svc := service.NewOrderService(repos, logger)
	return func(c *gin.Context) {
		var req OrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		created, err := svc.Create(c.Request.Context(), req.toDraft())
		if err != nil {
			writeServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, toOrderResponse(*created))
	}
}

// HandleUpdateOrder handles PUT /api/v1/orders/:id
func HandleUpdateOrder(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	svc := service.NewOrderService(repos, logger)
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order id required"})
			return
		}

		var req OrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		updated, err := svc.Update(c.Request.Context(), id, req.toDraft())
		if err != nil {
			writeServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, toOrderResponse(*updated))
	}
}

// HandleDeleteOrder handles DELETE /api/v1/orders/:id?confirm=true.
// Without confirm=true the delete is refused before any storage call.
func HandleDeleteOrder(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	svc := service.NewOrderService(repos, logger)
	return func(c *gin.Context) {
		id := c.Param("id")
		confirmed := c.Query("confirm") == "true"

		if err := svc.Delete(c.Request.Context(), id, confirmed); err != nil {
			writeServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": id})
	}
}

// HandleExportOrders handles GET /api/v1/orders/export, returning the
// workbook as an attachment named orders.xlsx.
func HandleExportOrders(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	svc := service.NewOrderService(repos, logger)
	return func(c *gin.Context) {
		orders, err := svc.List(c.Request.Context())
		if err != nil {
			writeServiceError(c, logger, err)
			return
		}

		var buf bytes.Buffer
		if err := svc.Export(orders, &buf); err != nil {
			writeServiceError(c, logger, err)
			return
		}

		c.Header("Content-Disposition", `attachment; filename="`+service.ExportFileName+`"`)
		c.Data(http.StatusOK,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			buf.Bytes())
	}
}

// HandleOrderSummary handles GET /api/v1/orders/summary
func HandleOrderSummary(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	svc := service.NewOrderService(repos, logger)
	return func(c *gin.Context) {
		orders, err := svc.List(c.Request.Context())
		if err != nil {
			writeServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, svc.Summarize(orders))
	}
}
