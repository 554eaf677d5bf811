// Package service composes client calls into the flows a screen would
// run. Reads that later calls depend on are awaited before the dependent
// request is issued, and every figure stays in floating point until a
// caller rounds it for display.
package service

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/api"
	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/model"
)

// StepProvider supplies the cumulative step count for a date, as read
// from the device's health source. The provider is a collaborator; the
// service never derives steps itself.
type StepProvider interface {
	StepsForDate(ctx context.Context, date string) (float64, error)
}

// Summary is one day's dashboard state.
type Summary struct {
	Date              string
	Goal              model.Goal
	MaxCalories       float64
	CaloriesUsed      float64
	CaloriesBurned    float64
	Steps             float64
	RemainingCalories float64
}

// DisplayCalories rounds a calorie figure for presentation. Rounding
// happens here and nowhere earlier; persisted values stay raw floats.
func DisplayCalories(v float64) int {
	return int(math.Round(v))
}

// SyncDay recomputes the day's consumed calories from the meal list (the
// raw upstream source, never a previously derived total) and pushes the
// result together with the provider's step reading. Burned calories are
// deliberately absent from the update: only the server-side additive
// endpoint may change them.
func SyncDay(ctx context.Context, c *api.Client, steps StepProvider, date string) (model.DailyEntry, error) {
	meals, err := c.ListMeals(ctx, date)
	if err != nil {
		return model.DailyEntry{}, err
	}
	var total float64
	for _, m := range meals {
		total += m.Calories
	}

	update := api.DailyEntryUpdate{Calories: &total}
	if steps != nil {
		count, err := steps.StepsForDate(ctx, date)
		if err != nil {
			return model.DailyEntry{}, err
		}
		update.Steps = &count
	}
	return c.UpdateDailyEntry(ctx, date, update)
}

// DaySummary reads the profile first, then the daily entry that depends
// on nothing, and assembles the dashboard numbers. An account that has
// never completed the profile form yields a summary with no goal and a
// zero calorie target rather than an error.
func DaySummary(ctx context.Context, c *api.Client, date string) (Summary, error) {
	profile, err := c.FetchProfile(ctx)
	if err != nil && !api.IsKind(err, api.KindMalformedResponse) {
		return Summary{}, err
	}
	entry, err := c.FetchDailyEntry(ctx, date)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Date:              date,
		Goal:              profile.Goal,
		MaxCalories:       profile.MaxCalories,
		CaloriesUsed:      entry.Calories,
		CaloriesBurned:    entry.CaloriesBurn,
		Steps:             entry.Steps,
		RemainingCalories: math.Max(0, profile.MaxCalories-entry.Calories),
	}, nil
}

// TrainingsForUser resolves the stored goal from the profile and only
// then fetches the matching programs; the two calls are strictly
// sequential because the second depends on the first.
func TrainingsForUser(ctx context.Context, c *api.Client) (model.Goal, []model.TrainingProgram, error) {
	profile, err := c.FetchProfile(ctx)
	if err != nil {
		return "", nil, err
	}
	programs, err := c.TrainingsByGoal(ctx, profile.Goal)
	if err != nil {
		return "", nil, err
	}
	return profile.Goal, programs, nil
}

// RecordWorkout credits a finished program's calorie estimate through the
// additive server endpoint.
func RecordWorkout(ctx context.Context, c *api.Client, date string, program model.TrainingProgram) error {
	return c.AddCaloriesBurned(ctx, date, float64(program.TotalCalories))
}

// ConsumeScannedProduct logs a scanned product as a meal for the date.
// The calorie figure is kcal-per-100 times the consumed quantity, kept
// in floating point through persistence.
func ConsumeScannedProduct(ctx context.Context, c *api.Client, date string, product model.Product, quantity string) (api.NewMeal, error) {
	qty, err := strconv.ParseFloat(strings.TrimSpace(quantity), 64)
	if err != nil || qty <= 0 {
		return api.NewMeal{}, &api.Error{Kind: api.KindInvalidRequest, Message: "invalid quantity " + strconv.Quote(quantity) + " (expected a positive number)"}
	}
	meal := api.NewMeal{
		Name:     product.Name,
		Calories: product.Nutriments.EnergyKcal / 100.0 * qty,
		Quantity: strings.TrimSpace(quantity),
		ImageURL: product.ImageURL,
	}
	if _, err := c.AddMeal(ctx, date, meal); err != nil {
		return api.NewMeal{}, err
	}
	return meal, nil
}

// DishFromFridge lists the fridge first, then asks for a dish built from
// those product names. An empty fridge is passed through as an empty
// list, which the server treats as "whatever is available".
func DishFromFridge(ctx context.Context, c *api.Client) (model.Dish, error) {
	products, err := c.ListFridge(ctx)
	if err != nil {
		return model.Dish{}, err
	}
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	return c.RecommendDish(ctx, names)
}
