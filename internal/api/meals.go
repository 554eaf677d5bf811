package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/model"
)

// NewMeal is the client-side shape of a meal about to be persisted; the
// server assigns the id and creation timestamp.
type NewMeal struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Quantity string  `json:"quantity"`
	ImageURL string  `json:"image_url"`
}

// ListMeals returns the day's meals in server order.
func (c *Client) ListMeals(ctx context.Context, date string) ([]model.Meal, error) {
	s, err := c.requireSession()
	if err != nil {
		return nil, err
	}
	if !validDate(date) {
		return nil, invalidRequest("invalid date %q (expected yyyy-MM-dd)", date)
	}
	var meals []model.Meal
	if err := c.do(ctx, http.MethodGet, "/api/daily_entries/"+s.UserID+"/entries/"+date+"/meals", s.Token, nil, &meals); err != nil {
		return nil, err
	}
	for _, m := range meals {
		if m.ID == "" {
			return nil, malformedResponse("id")
		}
		if m.Name == "" {
			return nil, malformedResponse("name")
		}
	}
	return meals, nil
}

// AddMeal persists a meal under (user, date) and returns the server's
// acknowledgement message.
func (c *Client) AddMeal(ctx context.Context, date string, meal NewMeal) (string, error) {
	s, err := c.requireSession()
	if err != nil {
		return "", err
	}
	if !validDate(date) {
		return "", invalidRequest("invalid date %q (expected yyyy-MM-dd)", date)
	}
	if strings.TrimSpace(meal.Name) == "" {
		return "", invalidRequest("meal name is required")
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/daily_entries/"+s.UserID+"/entries/"+date+"/meals", s.Token, meal, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// AddMealFromFoodName asks the AI estimation endpoint for the calories of
// a free-text food, then immediately persists the estimate as a meal for
// the date. The stored image reference is always the local placeholder
// token, never whatever the estimator returned.
func (c *Client) AddMealFromFoodName(ctx context.Context, date, foodName, quantity string) (model.Meal, error) {
	s, err := c.requireSession()
	if err != nil {
		return model.Meal{}, err
	}
	foodName = strings.TrimSpace(foodName)
	if foodName == "" {
		return model.Meal{}, invalidRequest("food name is required")
	}
	qty, convErr := strconv.ParseFloat(strings.TrimSpace(quantity), 64)
	if convErr != nil || qty <= 0 {
		return model.Meal{}, invalidRequest("invalid quantity %q (expected a positive number)", quantity)
	}

	var estimated struct {
		Name     string  `json:"name"`
		Calories float64 `json:"calories"`
		Quantity float64 `json:"quantity"`
	}
	body := map[string]any{"name": foodName, "quantity": qty}
	if err := c.do(ctx, http.MethodPost, "/api/calories-food", s.Token, body, &estimated); err != nil {
		return model.Meal{}, err
	}
	if estimated.Name == "" {
		return model.Meal{}, malformedResponse("name")
	}

	meal := NewMeal{
		Name:     estimated.Name,
		Calories: estimated.Calories,
		Quantity: strconv.FormatFloat(estimated.Quantity, 'f', -1, 64),
		ImageURL: model.MealImagePlaceholder,
	}
	if _, err := c.AddMeal(ctx, date, meal); err != nil {
		return model.Meal{}, err
	}
	return model.Meal{
		Name:     meal.Name,
		Calories: meal.Calories,
		Quantity: meal.Quantity,
		ImageURL: meal.ImageURL,
	}, nil
}

// DeleteMeal removes one meal by id, scoped to (user, date). Deleting an
// id the server no longer has comes back as KindNotFound.
func (c *Client) DeleteMeal(ctx context.Context, date, mealID string) error {
	s, err := c.requireSession()
	if err != nil {
		return err
	}
	if !validDate(date) {
		return invalidRequest("invalid date %q (expected yyyy-MM-dd)", date)
	}
	if mealID == "" {
		return invalidRequest("meal id is required")
	}
	return c.do(ctx, http.MethodDelete, "/api/daily_entries/"+s.UserID+"/entries/"+date+"/meals/"+mealID, s.Token, nil, nil)
}
