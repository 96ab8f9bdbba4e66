package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shamsy-hassan/FSH-sub001/internal/domain"
)

type ECommerceGateway struct {
	c *Client
}

func (g *ECommerceGateway) Categories(ctx context.Context) ([]domain.ProductCategory, error) {
	raw, err := g.c.request(ctx, http.MethodGet, "/ecommerce/categories", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.ProductCategory](raw, "categories")
}

type ListProductsOpts struct {
	CategoryID int64
	Search     string
	ActiveOnly bool
	Page       int
	PerPage    int
}

func (g *ECommerceGateway) Products(ctx context.Context, opts ListProductsOpts) ([]domain.Product, error) {
	q := url.Values{}
	setPage(q, opts.Page, opts.PerPage)
	setInt64IfPresent(q, "category_id", opts.CategoryID)
	setIfPresent(q, "search", opts.Search)
	setBoolIfTrue(q, "active_only", opts.ActiveOnly)

	raw, err := g.c.request(ctx, http.MethodGet, "/ecommerce/products", q, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Product](raw, "products")
}

func (g *ECommerceGateway) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	raw, err := g.c.request(ctx, http.MethodGet, fmt.Sprintf("/ecommerce/products/%d", productID), nil, nil)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Product *domain.Product `json:"product"`
	}
	if err := decodeInto(raw, &envelope); err != nil {
		return nil, err
	}
	if envelope.Product != nil {
		return envelope.Product, nil
	}
	var product domain.Product
	if err := decodeInto(raw, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (g *ECommerceGateway) Cart(ctx context.Context) (*domain.Cart, error) {
	raw, err := g.c.request(ctx, http.MethodGet, "/ecommerce/cart", nil, nil)
	if err != nil {
		return nil, err
	}
	var cart domain.Cart
	if err := decodeInto(raw, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (g *ECommerceGateway) AddToCart(ctx context.Context, productID int64, quantity int) error {
	body := map[string]interface{}{
		"product_id": productID,
		"quantity":   quantity,
	}
	_, err := g.c.request(ctx, http.MethodPost, "/ecommerce/cart/items", nil, body)
	return err
}

func (g *ECommerceGateway) UpdateCartItem(ctx context.Context, itemID int64, quantity int) error {
	body := map[string]interface{}{"quantity": quantity}
	_, err := g.c.request(ctx, http.MethodPut, fmt.Sprintf("/ecommerce/cart/items/%d", itemID), nil, body)
	return err
}

func (g *ECommerceGateway) RemoveCartItem(ctx context.Context, itemID int64) error {
	_, err := g.c.request(ctx, http.MethodDelete, fmt.Sprintf("/ecommerce/cart/items/%d", itemID), nil, nil)
	return err
}

func (g *ECommerceGateway) ClearCart(ctx context.Context) error {
	_, err := g.c.request(ctx, http.MethodDelete, "/ecommerce/cart", nil, nil)
	return err
}

type ProductInput struct {
	CategoryID  int64  `validate:"required"`
	Name        string `validate:"required"`
	Description string
	Price       float64 `validate:"gte=0"`
	Stock       int     `validate:"gte=0"`
	Image       []byte
	Filename    string
}

func (i ProductInput) form() *Form {
	form := NewForm().
		Set("category_id", fmt.Sprintf("%d", i.CategoryID)).
		Set("name", i.Name).
		Set("price", fmt.Sprintf("%g", i.Price)).
		Set("stock", fmt.Sprintf("%d", i.Stock)).
		SetIfPresent("description", i.Description)
	if len(i.Image) > 0 {
		form.AddFile("image", i.Filename, i.Image)
	}
	return form
}

func (g *ECommerceGateway) CreateProduct(ctx context.Context, input ProductInput) (*domain.Product, error) {
	if err := g.c.requireAdmin(); err != nil {
		return nil, err
	}
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("validate product input: %w", err)
	}

	raw, err := g.c.requestMultipart(ctx, http.MethodPost, "/ecommerce/products", input.form())
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Product *domain.Product `json:"product"`
	}
	if err := decodeInto(raw, &envelope); err != nil {
		return nil, err
	}
	return envelope.Product, nil
}

func (g *ECommerceGateway) UpdateProduct(ctx context.Context, productID int64, input ProductInput) error {
	if err := g.c.requireAdmin(); err != nil {
		return err
	}
	_, err := g.c.requestMultipart(ctx, http.MethodPut, fmt.Sprintf("/ecommerce/products/%d", productID), input.form())
	return err
}

func (g *ECommerceGateway) DeleteProduct(ctx context.Context, productID int64) error {
	if err := g.c.requireAdmin(); err != nil {
		return err
	}
	_, err := g.c.request(ctx, http.MethodDelete, fmt.Sprintf("/ecommerce/products/%d", productID), nil, nil)
	return err
}

func (g *ECommerceGateway) UpdateProductStatus(ctx context.Context, productID int64, active bool) error {
	if err := g.c.requireAdmin(); err != nil {
		return err
	}
	body := map[string]bool{"is_active": active}
	_, err := g.c.request(ctx, http.MethodPut, fmt.Sprintf("/ecommerce/products/%d/status", productID), nil, body)
	return err
}

type ProductCategoryInput struct {
	Name        string `validate:"required"`
	Description string
	Image       []byte
	Filename    string
}

func (g *ECommerceGateway) CreateCategory(ctx context.Context, input ProductCategoryInput) (*domain.ProductCategory, error) {
	if err := g.c.requireAdmin(); err != nil {
		return nil, err
	}
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("validate category input: %w", err)
	}

	form := NewForm().
		Set("name", input.Name).
		SetIfPresent("description", input.Description)
	if len(input.Image) > 0 {
		form.AddFile("image", input.Filename, input.Image)
	}

	raw, err := g.c.requestMultipart(ctx, http.MethodPost, "/ecommerce/categories", form)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Category *domain.ProductCategory `json:"category"`
	}
	if err := decodeInto(raw, &envelope); err != nil {
		return nil, err
	}
	return envelope.Category, nil
}

func (g *ECommerceGateway) DeleteCategory(ctx context.Context, categoryID int64) error {
	if err := g.c.requireAdmin(); err != nil {
		return err
	}
	_, err := g.c.request(ctx, http.MethodDelete, fmt.Sprintf("/ecommerce/categories/%d", categoryID), nil, nil)
	return err
}
