package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"weblarek/internal/domain/order"
	"weblarek/internal/domain/product"
)

// NotFoundMessage is the error text the API uses for unknown resources.
const NotFoundMessage = "NotFound"

func abortWithError(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusNotFound {
		msg = NotFoundMessage
	}
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		msg = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

func statusFor(err error) int {
	var verr *order.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, product.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, product.ErrMissingField),
		errors.Is(err, order.ErrEmptyOrder),
		errors.Is(err, order.ErrInvalidTotal),
		errors.Is(err, order.ErrInvalidPayment),
		errors.Is(err, order.ErrUnknownItem),
		errors.Is(err, order.ErrPricelessItem),
		errors.Is(err, order.ErrDuplicateItem),
		errors.Is(err, order.ErrMissingField):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
