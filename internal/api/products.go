package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/model"
)

// LookupBarcode resolves a scanned barcode to a transient product. The
// server is authoritative: an unknown or non-food barcode is
// KindNotFound, distinct from transport or auth failures.
func (c *Client) LookupBarcode(ctx context.Context, barcode string) (model.Product, error) {
	s, err := c.requireSession()
	if err != nil {
		return model.Product{}, err
	}
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return model.Product{}, invalidRequest("barcode is required")
	}
	var product model.Product
	if err := c.do(ctx, http.MethodGet, "/api/nutrition/get-nutritional-info/"+barcode, s.Token, nil, &product); err != nil {
		return model.Product{}, err
	}
	if product.Name == "" {
		return model.Product{}, malformedResponse("product_name")
	}
	// Scan results are transient by definition; drop any id the lookup
	// happened to carry so Persisted() stays truthful.
	product.ID = ""
	return product, nil
}

// SaveToFridge persists a transient product into the user's fridge.
func (c *Client) SaveToFridge(ctx context.Context, product model.Product) error {
	s, err := c.requireSession()
	if err != nil {
		return err
	}
	if strings.TrimSpace(product.Name) == "" {
		return invalidRequest("product name is required")
	}
	allergens := product.Allergens
	if allergens == nil {
		allergens = []string{}
	}
	body := map[string]any{
		"product_name":     product.Name,
		"ingredients_text": product.IngredientsText,
		"nutriscore_grade": product.NutriScore,
		"brands":           product.Brands,
		"categories":       product.Categories,
		"quantity":         product.Quantity,
		"labels":           product.Labels,
		"allergens":        allergens,
		"image_url":        product.ImageURL,
		"nutriments":       product.Nutriments.StorageMap(),
	}
	return c.do(ctx, http.MethodPost, "/api/nutrition/save-product/"+s.UserID, s.Token, body, nil)
}

// ListFridge returns the persisted fridge inventory in server order.
func (c *Client) ListFridge(ctx context.Context) ([]model.Product, error) {
	s, err := c.requireSession()
	if err != nil {
		return nil, err
	}
	var products []model.Product
	if err := c.do(ctx, http.MethodGet, "/api/nutrition/product-list/"+s.UserID, s.Token, nil, &products); err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == "" {
			return nil, malformedResponse("_id")
		}
		if p.Name == "" {
			return nil, malformedResponse("product_name")
		}
	}
	return products, nil
}

// DeleteFromFridge removes a persisted product by id.
func (c *Client) DeleteFromFridge(ctx context.Context, productID string) error {
	s, err := c.requireSession()
	if err != nil {
		return err
	}
	if productID == "" {
		return invalidRequest("product id is required")
	}
	return c.do(ctx, http.MethodDelete, "/api/nutrition/product/"+s.UserID+"/"+productID, s.Token, nil, nil)
}
