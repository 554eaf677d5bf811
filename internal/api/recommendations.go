package api

import (
	"context"
	"net/http"

	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/model"
)

// RecommendDish asks the AI endpoint for a dish built from the given
// product names. An empty list is legal; the server then cooks with
// whatever it considers available. The result is ephemeral, nothing is
// persisted.
func (c *Client) RecommendDish(ctx context.Context, productNames []string) (model.Dish, error) {
	s, err := c.requireSession()
	if err != nil {
		return model.Dish{}, err
	}
	if productNames == nil {
		productNames = []string{}
	}
	var dish model.Dish
	body := map[string][]string{"food": productNames}
	if err := c.do(ctx, http.MethodPost, "/api/recommend-dish", s.Token, body, &dish); err != nil {
		return model.Dish{}, err
	}
	if dish.Name == "" {
		return model.Dish{}, malformedResponse("Name")
	}
	return dish, nil
}
