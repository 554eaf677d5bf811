package api

import (
	"context"
	"net/http"

	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/model"
)

// TrainingsByGoal fetches the programs for a goal category. The goal must
// be the stored enum value, resolved from the profile, not a display
// string.
func (c *Client) TrainingsByGoal(ctx context.Context, goal model.Goal) ([]model.TrainingProgram, error) {
	s, err := c.requireSession()
	if err != nil {
		return nil, err
	}
	if _, err := model.ParseGoal(string(goal)); err != nil {
		return nil, invalidRequest("%v", err)
	}
	var programs []model.TrainingProgram
	if err := c.do(ctx, http.MethodGet, "/api/trainings/type/"+string(goal), s.Token, nil, &programs); err != nil {
		return nil, err
	}
	for _, p := range programs {
		if p.ID == "" {
			return nil, malformedResponse("id")
		}
	}
	return programs, nil
}
