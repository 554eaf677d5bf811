package api

import (
	"context"
	"testing"

	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/backendtest"
)

func seedYogurt(srv *backendtest.Server) {
	srv.SeedBarcode("3017620422003", map[string]any{
		"product_name":     "Greek Yogurt",
		"ingredients_text": "milk, cultures",
		"nutriscore_grade": "B",
		"brands":           "Brand Co",
		"categories":       "dairy",
		"quantity":         "170 g",
		"labels":           "organic",
		"allergens":        []string{"milk"},
		"image_url":        "https://img.example/yogurt.png",
		"nutriments": map[string]float64{
			"energy":        510.0,
			"energy-kcal":   122.0,
			"fat":           3.2,
			"saturated-fat": 2.1,
			"sugars":        4.5,
			"salt":          0.1,
			"proteins":      10.0,
		},
	})
}

func TestLookupBarcodeReturnsTransientProduct(t *testing.T) {
	t.Parallel()

	srv := backendtest.New()
	defer srv.Close()
	client, _, _ := signedInClient(t, srv)
	seedYogurt(srv)

	product, err := client.LookupBarcode(context.Background(), "3017620422003")
	if err != nil {
		t.Fatalf("lookup barcode: %v", err)
	}
	if product.Persisted() {
		t.Fatalf("a fresh scan must be transient, got id %q", product.ID)
	}
	if product.Name != "Greek Yogurt" || product.Nutriments.EnergyKcal != 122 {
		t.Fatalf("unexpected product: %+v", product)
	}
	if product.Nutriments.SaturatedFatG != 2.1 {
		t.Fatalf("hyphenated saturated-fat did not hydrate: %+v", product.Nutriments)
	}
}

func TestLookupBarcodeUnknownIsNotFound(t *testing.T) {
	t.Parallel()

	srv := backendtest.New()
	defer srv.Close()
	client, _, _ := signedInClient(t, srv)

	_, err := client.LookupBarcode(context.Background(), "0000000000000")
	if !IsKind(err, KindNotFound) {
		t.Fatalf("expected not_found for an unknown barcode, got %v", err)
	}
}

func TestFridgeSaveListDelete(t *testing.T) {
	t.Parallel()

	srv := backendtest.New()
	defer srv.Close()
	client, _, _ := signedInClient(t, srv)
	seedYogurt(srv)
	ctx := context.Background()

	product, err := client.LookupBarcode(ctx, "3017620422003")
	if err != nil {
		t.Fatalf("lookup barcode: %v", err)
	}
	if err := client.SaveToFridge(ctx, product); err != nil {
		t.Fatalf("save to fridge: %v", err)
	}

	items, err := client.ListFridge(ctx)
	if err != nil {
		t.Fatalf("list fridge: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one fridge item, got %+v", items)
	}
	saved := items[0]
	if !saved.Persisted() {
		t.Fatal("fridge items must carry a server-assigned id")
	}
	if saved.Nutriments != product.Nutriments {
		t.Fatalf("nutriments changed across save/list: %+v != %+v", saved.Nutriments, product.Nutriments)
	}

	if err := client.DeleteFromFridge(ctx, saved.ID); err != nil {
		t.Fatalf("delete from fridge: %v", err)
	}
	if err := client.DeleteFromFridge(ctx, saved.ID); !IsKind(err, KindNotFound) {
		t.Fatalf("second delete must be not_found, got %v", err)
	}
	items, err = client.ListFridge(ctx)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty fridge, got %+v", items)
	}
}
