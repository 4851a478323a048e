package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bakerskart/kart/internal/domain"
)

// ProductFields is the create/update form for a product. Image is optional
// and rides along as a multipart file part.
type ProductFields struct {
	Title        string
	Company      string
	Description  string
	Category     string
	Price        string
	SellingPrice string
	Code         string
	Stock        string
}

func (f ProductFields) formFields() map[string]string {
	return map[string]string{
		"title":        f.Title,
		"company":      f.Company,
		"description":  f.Description,
		"category":     f.Category,
		"price":        f.Price,
		"sellingPrice": f.SellingPrice,
		"code":         f.Code,
		"stock":        f.Stock,
	}
}

// Products returns one page of the catalog.
func (c *Client) Products(ctx context.Context, q ListQuery) ([]domain.Product, domain.Pagination, error) {
	body, err := c.gw.Get(ctx, "/products", q.values("limit"), CredNone)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	var products []domain.Product
	meta, err := decodeList(body, &products)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return products, meta, nil
}

// Product returns a single catalog item. The endpoint wraps it in {data}.
func (c *Client) Product(ctx context.Context, id string) (*domain.Product, error) {
	body, err := c.gw.Get(ctx, "/products/"+id, nil, CredNone)
	if err != nil {
		return nil, err
	}
	var product domain.Product
	if err := decodeWrapped(body, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// SearchProducts queries the live search endpoint by name, company or code.
func (c *Client) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	v := url.Values{}
	v.Set("q", query)
	body, err := c.gw.Get(ctx, "/products/search", v, CredNone)
	if err != nil {
		return nil, err
	}
	var products []domain.Product
	if err := decodeBare(body, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct adds a catalog item, with an optional image upload.
func (c *Client) CreateProduct(ctx context.Context, fields ProductFields, image *FilePart) error {
	var files []FilePart
	if image != nil {
		files = append(files, *image)
	}
	_, err := c.gw.SendMultipart(ctx, http.MethodPost, "/products", fields.formFields(), files, CredAdmin)
	return err
}

// UpdateProduct edits a catalog item. A nil image leaves the current one.
func (c *Client) UpdateProduct(ctx context.Context, id string, fields ProductFields, image *FilePart) error {
	var files []FilePart
	if image != nil {
		files = append(files, *image)
	}
	_, err := c.gw.SendMultipart(ctx, http.MethodPatch, "/products/"+id, fields.formFields(), files, CredAdmin)
	return err
}

// DeleteProduct removes a catalog item.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	_, err := c.gw.Send(ctx, http.MethodDelete, "/products/"+id, nil, CredAdmin)
	return err
}
