package service

import (
	"context"
	"testing"

	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/api"
	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/backendtest"
	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/model"
	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/session"
)

type fixedSteps float64

func (f fixedSteps) StepsForDate(ctx context.Context, date string) (float64, error) {
	return float64(f), nil
}

func signedInClient(t *testing.T, srv *backendtest.Server) (*api.Client, string) {
	t.Helper()
	userID := srv.Register("Test User", "user@example.com", "secret123")
	client := api.New(srv.URL(), session.NewMemory())
	if _, err := client.SignIn(context.Background(), "user@example.com", "secret123"); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	return client, userID
}

func TestTrainingsForUserUsesStoredGoalEnum(t *testing.T) {
	t.Parallel()

	srv := backendtest.New()
	defer srv.Close()
	client, _ := signedInClient(t, srv)
	ctx := context.Background()

	profile := model.UserProfile{
		Age:      30,
		WeightKg: 70,
		HeightCm: 175,
		Activity: model.ActivityActive,
		Goal:     model.GoalWeightLoss,
	}
	if err := client.SaveProfile(ctx, profile); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	srv.SeedTrainings("WEIGHTLOSS", []map[string]any{
		{"id": "p1", "totalCalories": 300, "name": "Cardio", "description": "", "type": "WEIGHTLOSS", "exercises": []map[string]any{}},
	})

	goal, programs, err := TrainingsForUser(ctx, client)
	if err != nil {
		t.Fatalf("trainings for user: %v", err)
	}
	if goal != model.GoalWeightLoss {
		t.Fatalf("resolved goal %q, want WEIGHTLOSS", goal)
	}
	if len(programs) != 1 || programs[0].ID != "p1" {
		t.Fatalf("unexpected programs: %+v", programs)
	}

	requested := srv.TrainingGoalsRequested()
	if len(requested) != 1 || requested[0] != "WEIGHTLOSS" {
		t.Fatalf("trainings fetched with %v, want exactly [WEIGHTLOSS]", requested)
	}
}

func TestSyncDayRecomputesFromMealsAndProviderSteps(t *testing.T) {
	t.Parallel()

	srv := backendtest.New()
	defer srv.Close()
	client, userID := signedInClient(t, srv)
	ctx := context.Background()

	srv.SeedDailyEntry(userID, "2025-01-06", map[string]any{
		"date":         "2025-01-06",
		"calories":     9999.0, // stale derived value, must be overwritten from meals
		"caloriesBurn": 180.0,
		"steps":        100.0,
	})
	if _, err := client.AddMeal(ctx, "2025-01-06", api.NewMeal{Name: "Oats", Calories: 210.5, Quantity: "60"}); err != nil {
		t.Fatalf("add meal: %v", err)
	}
	if _, err := client.AddMeal(ctx, "2025-01-06", api.NewMeal{Name: "Banana", Calories: 89.25, Quantity: "120"}); err != nil {
		t.Fatalf("add meal: %v", err)
	}

	entry, err := SyncDay(ctx, client, fixedSteps(8432), "2025-01-06")
	if err != nil {
		t.Fatalf("sync day: %v", err)
	}
	if entry.Calories != 299.75 {
		t.Fatalf("expected calories recomputed from meals (299.75), got %v", entry.Calories)
	}
	if entry.Steps != 8432 {
		t.Fatalf("expected provider steps 8432, got %v", entry.Steps)
	}
	// Burned calories belong to the additive endpoint alone; the sync
	// must not have touched them.
	if entry.CaloriesBurn != 180 {
		t.Fatalf("sync must not rewrite caloriesBurn, got %v", entry.CaloriesBurn)
	}
}

func TestRecordWorkoutIsAdditiveAcrossSessions(t *testing.T) {
	t.Parallel()

	srv := backendtest.New()
	defer srv.Close()
	client, _ := signedInClient(t, srv)
	ctx := context.Background()

	program := model.TrainingProgram{ID: "p1", TotalCalories: 100, Name: "HIIT"}
	if err := RecordWorkout(ctx, client, "2025-01-06", program); err != nil {
		t.Fatalf("first workout: %v", err)
	}
	if err := RecordWorkout(ctx, client, "2025-01-06", program); err != nil {
		t.Fatalf("second workout: %v", err)
	}
	entry, err := client.FetchDailyEntry(ctx, "2025-01-06")
	if err != nil {
		t.Fatalf("fetch entry: %v", err)
	}
	if entry.CaloriesBurn != 200 {
		t.Fatalf("two workouts of 100 must accumulate to 200, got %v", entry.CaloriesBurn)
	}
}

func TestDaySummaryEndToEnd(t *testing.T) {
	t.Parallel()

	srv := backendtest.New()
	defer srv.Close()
	client, userID := signedInClient(t, srv)
	ctx := context.Background()

	if err := client.SaveProfile(ctx, model.UserProfile{
		Age: 28, WeightKg: 64, HeightCm: 170,
		Activity: model.ActivitySedentary,
		Goal:     model.GoalWeightLoss,
	}); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	srv.SeedDailyEntry(userID, "2025-01-06", map[string]any{
		"date":         "2025-01-06",
		"calories":     1450.4,
		"caloriesBurn": 320.0,
		"steps":        6200.0,
	})

	summary, err := DaySummary(ctx, client, "2025-01-06")
	if err != nil {
		t.Fatalf("day summary: %v", err)
	}
	if summary.Goal != model.GoalWeightLoss {
		t.Fatalf("summary goal %q, want WEIGHTLOSS", summary.Goal)
	}
	if summary.MaxCalories != 2000 {
		t.Fatalf("expected the server-computed target 2000, got %v", summary.MaxCalories)
	}
	if summary.RemainingCalories != 2000-1450.4 {
		t.Fatalf("unexpected remaining calories %v", summary.RemainingCalories)
	}
	if DisplayCalories(summary.CaloriesUsed) != 1450 {
		t.Fatalf("display rounding broke: %d", DisplayCalories(summary.CaloriesUsed))
	}
}

func TestDaySummaryBeforeProfileSetup(t *testing.T) {
	t.Parallel()

	srv := backendtest.New()
	defer srv.Close()
	client, userID := signedInClient(t, srv)
	ctx := context.Background()

	srv.SeedDailyEntry(userID, "2025-01-06", map[string]any{
		"date":     "2025-01-06",
		"calories": 400.0,
	})

	summary, err := DaySummary(ctx, client, "2025-01-06")
	if err != nil {
		t.Fatalf("a missing profile must not fail the dashboard: %v", err)
	}
	if summary.Goal != "" || summary.MaxCalories != 0 {
		t.Fatalf("expected an empty goal and no target, got %+v", summary)
	}
	if summary.CaloriesUsed != 400 {
		t.Fatalf("entry figures must still be read, got %v", summary.CaloriesUsed)
	}
}

func TestConsumeScannedProductKeepsFloatsUntilDisplay(t *testing.T) {
	t.Parallel()

	srv := backendtest.New()
	defer srv.Close()
	client, _ := signedInClient(t, srv)
	ctx := context.Background()

	product := model.Product{
		Name:       "Dark Chocolate",
		Nutriments: model.NutritionFacts{EnergyKcal: 546.0},
		ImageURL:   "https://img.example/choc.png",
	}
	meal, err := ConsumeScannedProduct(ctx, client, "2025-01-06", product, "33")
	if err != nil {
		t.Fatalf("consume scanned product: %v", err)
	}
	want := 546.0 / 100.0 * 33.0
	if meal.Calories != want {
		t.Fatalf("expected raw float calories %v, got %v", want, meal.Calories)
	}

	meals, err := client.ListMeals(ctx, "2025-01-06")
	if err != nil || len(meals) != 1 {
		t.Fatalf("list meals: %v %+v", err, meals)
	}
	if meals[0].Calories != want {
		t.Fatalf("persisted calories were rounded: %v != %v", meals[0].Calories, want)
	}
}

func TestDishFromFridgeUsesFridgeNames(t *testing.T) {
	t.Parallel()

	srv := backendtest.New()
	defer srv.Close()
	client, _ := signedInClient(t, srv)
	ctx := context.Background()

	if err := client.SaveToFridge(ctx, model.Product{Name: "tomato"}); err != nil {
		t.Fatalf("save to fridge: %v", err)
	}
	if err := client.SaveToFridge(ctx, model.Product{Name: "basil"}); err != nil {
		t.Fatalf("save to fridge: %v", err)
	}

	dish, err := DishFromFridge(ctx, client)
	if err != nil {
		t.Fatalf("dish from fridge: %v", err)
	}
	if len(dish.Food) != 2 || dish.Food[0] != "tomato" || dish.Food[1] != "basil" {
		t.Fatalf("expected fridge names in order, got %+v", dish.Food)
	}
}
