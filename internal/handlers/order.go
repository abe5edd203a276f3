package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"shop_backend/internal/logging"
	"shop_backend/internal/models"
	"shop_backend/internal/mykafka"
	"shop_backend/internal/order"
	"shop_backend/internal/pricing"
	"shop_backend/internal/token"

	mwauth "shop_backend/internal/middleware/auth"
)

type OrderHandler struct {
	Svc      *order.Service
	Tokens   *token.Service
	Producer *mykafka.Producer
}

type orderItemRequest struct {
	ProductID uint    `json:"productId"`
	Quantity  uint    `json:"quantity"`
	Price     float64 `json:"price"`
}

type createOrderRequest struct {
	PaymentStatusID uint               `json:"paymentStatusId"`
	PaymentMethod   string             `json:"paymentMethod"`
	OrderStatusID   uint               `json:"orderStatusId"`
	FullName        string             `json:"fullName"`
	ShippingAddress string             `json:"shippingAddress"`
	City            string             `json:"city"`
	PostalCode      int                `json:"postalCode"`
	County          string             `json:"county"`
	ShippingPrice   float64            `json:"shippingPrice"`
	TaxPrice        float64            `json:"taxPrice"`
	Items           []orderItemRequest `json:"orderItem"`
}

// orderResponse is the persisted order merged with the derived totals. The
// stored entity is never mutated to carry them.
type orderResponse struct {
	models.Order
	pricing.Totals
}

func newOrderResponse(o *models.Order, t pricing.Totals) orderResponse {
	return orderResponse{Order: *o, Totals: t}
}

func (req *createOrderRequest) draft() order.Draft {
	items := make([]models.OrderItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = models.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		}
	}
	return order.Draft{
		PaymentStatusID: req.PaymentStatusID,
		PaymentMethod:   req.PaymentMethod,
		OrderStatusID:   req.OrderStatusID,
		FullName:        req.FullName,
		ShippingAddress: req.ShippingAddress,
		City:            req.City,
		PostalCode:      req.PostalCode,
		County:          req.County,
		ShippingPrice:   req.ShippingPrice,
		TaxPrice:        req.TaxPrice,
		Items:           items,
	}
}

func (h *OrderHandler) publish(c echo.Context, event map[string]interface{}) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "order_events", fmt.Sprint(event["orderID"]), event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create")

	claims := mwauth.Identity(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	o, totals, err := h.Svc.Create(ctx, claims, req.draft())
	if err != nil {
		if errors.Is(err, order.ErrValidation) {
			l.Warn("create_order_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("create_order_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	h.publish(c, map[string]interface{}{
		"type":    "order_created",
		"orderID": o.ID,
		"userID":  o.UserID,
		"total":   totals.TotalPrice,
	})

	l.Info("create_order_success", "order_id", o.ID, "user_id", o.UserID)
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "New Order Created",
		"order":   newOrderResponse(o, totals),
	})
}

// GetOrder resolves the order before it authenticates, so a missing order is
// 404 for everyone. An existing one is gated by the owner-or-admin rule, and
// a deny looks exactly like a missing token.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	claims, _ := h.Tokens.FromRequest(c)

	o, totals, err := h.Svc.Get(ctx, claims, uint(id))
	if err != nil {
		switch {
		case errors.Is(err, order.ErrNotFound):
			l.Warn("get_order_error", "status", 404, "order_id", id)
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		case errors.Is(err, order.ErrForbidden):
			l.Warn("get_order_error", "status", 401, "order_id", id)
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		default:
			l.Error("get_order_error", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
	}

	return c.JSON(http.StatusOK, newOrderResponse(o, totals))
}

func (h *OrderHandler) UserOrderList(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.user_list")

	claims := mwauth.Identity(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	orders, err := h.Svc.ListForUser(ctx, claims)
	if err != nil {
		l.Error("user_order_list_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	if orders == nil {
		orders = []models.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}
