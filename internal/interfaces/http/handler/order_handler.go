package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	app "weblarek/internal/application/order"
	"weblarek/internal/domain/order"
	"weblarek/internal/domain/product"
)

type OrderHandler struct {
	svc *app.Service
}

func NewOrderHandler(svc *app.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// orderView is a stored order as returned by GET /order/:id.
type orderView struct {
	ID        string      `json:"id"`
	Payment   string      `json:"payment"`
	Address   string      `json:"address"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Total     json.Number `json:"total"`
	Items     []string    `json:"items"`
	CreatedAt time.Time   `json:"createdAt"`
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var o order.Order
	if err := c.ShouldBindJSON(&o); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.svc.PlaceOrder(c.Request.Context(), o)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    result.ID,
		"total": json.Number(result.Total.String()),
	})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	placed, err := h.svc.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if placed == nil {
		abortWithError(c, product.ErrNotFound)
		return
	}

	c.JSON(http.StatusOK, orderView{
		ID:        placed.ID,
		Payment:   placed.Order.Payment,
		Address:   placed.Order.Address,
		Email:     placed.Order.Email,
		Phone:     placed.Order.Phone,
		Total:     json.Number(placed.Order.Total.String()),
		Items:     placed.Order.Items,
		CreatedAt: placed.CreatedAt,
	})
}
