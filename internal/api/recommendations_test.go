package api

import (
	"context"
	"testing"

	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/backendtest"
)

func TestRecommendDishFromProductNames(t *testing.T) {
	t.Parallel()

	srv := backendtest.New()
	defer srv.Close()
	client, _, _ := signedInClient(t, srv)

	dish, err := client.RecommendDish(context.Background(), []string{"tomato", "mozzarella"})
	if err != nil {
		t.Fatalf("recommend dish: %v", err)
	}
	if dish.Name == "" || dish.ID == "" {
		t.Fatalf("unexpected dish: %+v", dish)
	}
	if len(dish.Food) != 2 || dish.Food[0] != "tomato" {
		t.Fatalf("expected the product names to reach the server, got %+v", dish.Food)
	}
	if len(dish.PreparationStep) == 0 {
		t.Fatal("expected ordered preparation steps")
	}
}

func TestRecommendDishWithEmptyFridgeIsLegal(t *testing.T) {
	t.Parallel()

	srv := backendtest.New()
	defer srv.Close()
	client, _, _ := signedInClient(t, srv)

	dish, err := client.RecommendDish(context.Background(), nil)
	if err != nil {
		t.Fatalf("recommend dish with empty list: %v", err)
	}
	if dish.Name == "" {
		t.Fatalf("unexpected dish: %+v", dish)
	}
}
