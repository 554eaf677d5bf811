package api

import (
	"context"
	"net/http"

	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/model"
)

// FetchProfile reads the user-info document for the signed-in user.
func (c *Client) FetchProfile(ctx context.Context) (model.UserProfile, error) {
	s, err := c.requireSession()
	if err != nil {
		return model.UserProfile{}, err
	}
	var profile model.UserProfile
	if err := c.do(ctx, http.MethodGet, "/api/user-info/"+s.UserID, s.Token, nil, &profile); err != nil {
		return model.UserProfile{}, err
	}
	if profile.Goal == "" {
		return model.UserProfile{}, malformedResponse("objective")
	}
	if profile.Activity == "" {
		return model.UserProfile{}, malformedResponse("activites")
	}
	return profile, nil
}

// SaveProfile writes the profile. The backend creates the document on the
// first write and recomputes the daily calorie target itself, so
// MaxCalories is never sent.
func (c *Client) SaveProfile(ctx context.Context, profile model.UserProfile) error {
	s, err := c.requireSession()
	if err != nil {
		return err
	}
	if _, err := model.ParseActivityLevel(string(profile.Activity)); err != nil {
		return invalidRequest("%v", err)
	}
	if _, err := model.ParseGoal(string(profile.Goal)); err != nil {
		return invalidRequest("%v", err)
	}
	if profile.Age <= 0 || profile.WeightKg <= 0 || profile.HeightCm <= 0 {
		return invalidRequest("age, weight and size must be positive")
	}

	body := map[string]any{
		"id":        s.UserID,
		"age":       profile.Age,
		"weight":    profile.WeightKg,
		"size":      profile.HeightCm,
		"genre":     profile.Female,
		"activites": profile.Activity,
		"objective": profile.Goal,
	}
	return c.do(ctx, http.MethodPut, "/api/user-info", s.Token, body, nil)
}
