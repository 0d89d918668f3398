package larek

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"weblarek/internal/config"
	"weblarek/internal/domain/order"
	"weblarek/internal/domain/product"
	"weblarek/internal/infrastructure/http/api"
	"weblarek/pkg/logger"
)

// Client talks to the Web-Larek API and resolves image paths against the CDN.
type Client struct {
	api    *api.Client
	cdnURL string
	log    logger.Logger
}

func NewClient(cfg config.LarekConfig, log logger.Logger) *Client {
	if log == nil {
		log = logger.NewNop()
	}
	return &Client{
		api: api.NewClient(cfg.BaseURL(), api.ClientConfig{
			Timeout:          cfg.Timeout,
			RetryMaxAttempts: cfg.RetryAttempts,
		}, log),
		cdnURL: cfg.CDNURL(),
		log:    log,
	}
}

// orderRequest keeps total a bare JSON number on the wire.
type orderRequest struct {
	Payment string      `json:"payment"`
	Email   string      `json:"email"`
	Phone   string      `json:"phone"`
	Address string      `json:"address"`
	Total   json.Number `json:"total"`
	Items   []string    `json:"items"`
}

// FetchProductList returns the whole catalog.
func (c *Client) FetchProductList(ctx context.Context) ([]product.Product, error) {
	var body product.ListResponse
	if err := c.api.Get(ctx, "/product", &body); err != nil {
		return nil, fmt.Errorf("fetch product list: %w", err)
	}

	items := make([]product.Product, 0, len(body.Items))
	for _, item := range body.Items {
		items = append(items, item.WithImagePrefix(c.cdnURL))
	}
	c.log.Debug("product list fetched", logger.Int("count", len(items)), logger.Int("total", body.Total))
	return items, nil
}

// FetchProductDetails returns a single product.
func (c *Client) FetchProductDetails(ctx context.Context, id string) (*product.Product, error) {
	if id == "" {
		return nil, fmt.Errorf("fetch product: %w", product.ErrMissingField)
	}
	var item product.Product
	if err := c.api.Get(ctx, "/product/"+url.PathEscape(id), &item); err != nil {
		return nil, fmt.Errorf("fetch product %s: %w", id, err)
	}
	item = item.WithImagePrefix(c.cdnURL)
	return &item, nil
}

// SubmitOrder places o and returns the id the API assigned.
func (c *Client) SubmitOrder(ctx context.Context, o order.Order) (*order.Result, error) {
	items := o.Items
	if items == nil {
		items = []string{}
	}
	req := orderRequest{
		Payment: o.Payment,
		Email:   o.Email,
		Phone:   o.Phone,
		Address: o.Address,
		Total:   json.Number(o.Total.String()),
		Items:   items,
	}

	var result order.Result
	if err := c.api.Post(ctx, "/order", req, &result); err != nil {
		return nil, fmt.Errorf("submit order: %w", err)
	}
	c.log.Info("order submitted", logger.String("order_id", result.ID), logger.Any("total", result.Total))
	return &result, nil
}
