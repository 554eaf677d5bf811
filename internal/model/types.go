package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Session is the persisted credential pair. Both fields are set together
// by sign-in and cleared together by logout; a session with only one of
// them is never valid.
type Session struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

func (s Session) Valid() bool {
	return s.Token != "" && s.UserID != ""
}

type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "SEDENTARY"
	ActivityActive    ActivityLevel = "ACTIVE"
	ActivitySportive  ActivityLevel = "SPORTIVE"
)

func ParseActivityLevel(value string) (ActivityLevel, error) {
	switch ActivityLevel(strings.ToUpper(strings.TrimSpace(value))) {
	case ActivitySedentary:
		return ActivitySedentary, nil
	case ActivityActive:
		return ActivityActive, nil
	case ActivitySportive:
		return ActivitySportive, nil
	}
	return "", fmt.Errorf("unknown activity level %q (expected SEDENTARY, ACTIVE or SPORTIVE)", value)
}

type Goal string

const (
	GoalWeightLoss Goal = "WEIGHTLOSS"
	GoalWeightGain Goal = "WEIGHTGAIN"
)

func ParseGoal(value string) (Goal, error) {
	switch Goal(strings.ToUpper(strings.TrimSpace(value))) {
	case GoalWeightLoss:
		return GoalWeightLoss, nil
	case GoalWeightGain:
		return GoalWeightGain, nil
	}
	return "", fmt.Errorf("unknown goal %q (expected WEIGHTLOSS or WEIGHTGAIN)", value)
}

// UserProfile mirrors the backend user-info document. The wire names are
// the backend's own (size for height, genre for the sex flag, activites
// and objective for the enums); Calories is the server-computed daily
// target and is read-only.
type UserProfile struct {
	UserID      string        `json:"id,omitempty"`
	Age         float64       `json:"age"`
	WeightKg    float64       `json:"weight"`
	HeightCm    float64       `json:"size"`
	Female      bool          `json:"genre"`
	Activity    ActivityLevel `json:"activites"`
	Goal        Goal          `json:"objective"`
	MaxCalories float64       `json:"calories,omitempty"`
}

// Timestamp is the backend's seconds/nanoseconds creation-time pair.
type Timestamp struct {
	Seconds     int64 `json:"_seconds"`
	Nanoseconds int64 `json:"_nanoseconds"`
}

// DateUnknown is the sentinel used when a daily-entry document arrives
// without its date field.
const DateUnknown = "unknown"

// DailyEntry is the per-user-per-date aggregate. Partial server documents
// are legal: missing numeric fields hydrate to zero and a missing date to
// DateUnknown.
type DailyEntry struct {
	Date         string    `json:"date"`
	Calories     float64   `json:"calories"`
	CaloriesBurn float64   `json:"caloriesBurn"`
	Steps        float64   `json:"steps"`
	CreatedAt    Timestamp `json:"createdAt"`
}

func (e *DailyEntry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Date         *string    `json:"date"`
		Calories     *float64   `json:"calories"`
		CaloriesBurn *float64   `json:"caloriesBurn"`
		Steps        *float64   `json:"steps"`
		CreatedAt    *Timestamp `json:"createdAt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.Date = DateUnknown
	if raw.Date != nil && *raw.Date != "" {
		e.Date = *raw.Date
	}
	if raw.Calories != nil {
		e.Calories = *raw.Calories
	} else {
		e.Calories = 0
	}
	if raw.CaloriesBurn != nil {
		e.CaloriesBurn = *raw.CaloriesBurn
	} else {
		e.CaloriesBurn = 0
	}
	if raw.Steps != nil {
		e.Steps = *raw.Steps
	} else {
		e.Steps = 0
	}
	if raw.CreatedAt != nil {
		e.CreatedAt = *raw.CreatedAt
	} else {
		e.CreatedAt = Timestamp{}
	}
	return nil
}

// MealImagePlaceholder is the reserved image token meaning "render the
// locally bundled AI-dish picture instead of fetching a URL".
const MealImagePlaceholder = "plateIA"

type Meal struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Calories  float64   `json:"calories"`
	Quantity  string    `json:"quantity"`
	ImageURL  string    `json:"image_url"`
	CreatedAt Timestamp `json:"createdAt"`
}

func (m Meal) HasPlaceholderImage() bool {
	return m.ImageURL == MealImagePlaceholder
}

// NutritionFacts holds the seven nutriment figures of a product, grams
// everywhere except the two energy fields.
type NutritionFacts struct {
	EnergyKJ      float64
	EnergyKcal    float64
	FatG          float64
	SaturatedFatG float64
	SugarsG       float64
	SaltG         float64
	ProteinsG     float64
}

// StorageMap returns the nutriments keyed the way the backend stores
// them. Saturated fat is written as saturatedFat; see FactsFromStorage
// for the read side.
func (n NutritionFacts) StorageMap() map[string]float64 {
	return map[string]float64{
		"energy":       n.EnergyKJ,
		"energy-kcal":  n.EnergyKcal,
		"fat":          n.FatG,
		"saturatedFat": n.SaturatedFatG,
		"sugars":       n.SugarsG,
		"salt":         n.SaltG,
		"proteins":     n.ProteinsG,
	}
}

// FactsFromStorage hydrates facts from a nutriments document. The barcode
// lookup spells saturated fat "saturated-fat" while saved fridge items
// carry "saturatedFat"; both are accepted, missing keys read as zero.
func FactsFromStorage(m map[string]float64) NutritionFacts {
	sat, ok := m["saturatedFat"]
	if !ok {
		sat = m["saturated-fat"]
	}
	return NutritionFacts{
		EnergyKJ:      m["energy"],
		EnergyKcal:    m["energy-kcal"],
		FatG:          m["fat"],
		SaturatedFatG: sat,
		SugarsG:       m["sugars"],
		SaltG:         m["salt"],
		ProteinsG:     m["proteins"],
	}
}

// DisplayMap renders the facts as labeled, unit-suffixed strings for
// direct presentation.
func (n NutritionFacts) DisplayMap() map[string]string {
	g := func(v float64, unit string) string {
		return strconv.FormatFloat(v, 'f', -1, 64) + " " + unit
	}
	return map[string]string{
		"Energy (kJ)":   g(n.EnergyKJ, "kJ"),
		"Energy (kcal)": g(n.EnergyKcal, "kcal"),
		"Fat":           g(n.FatG, "g"),
		"Saturated fat": g(n.SaturatedFatG, "g"),
		"Sugars":        g(n.SugarsG, "g"),
		"Salt":          g(n.SaltG, "g"),
		"Proteins":      g(n.ProteinsG, "g"),
	}
}

func (n NutritionFacts) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.StorageMap())
}

func (n *NutritionFacts) UnmarshalJSON(data []byte) error {
	var m map[string]float64
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*n = FactsFromStorage(m)
	return nil
}

// Product is either a transient scan result (no ID yet) or a persisted
// fridge item (server-assigned ID, deletable).
type Product struct {
	ID              string         `json:"_id,omitempty"`
	Name            string         `json:"product_name"`
	IngredientsText string         `json:"ingredients_text"`
	Nutriments      NutritionFacts `json:"nutriments"`
	NutriScore      string         `json:"nutriscore_grade"`
	Brands          string         `json:"brands"`
	Categories      string         `json:"categories"`
	Quantity        string         `json:"quantity"`
	Labels          string         `json:"labels"`
	Allergens       []string       `json:"allergens"`
	ImageURL        string         `json:"image_url"`
}

func (p Product) Persisted() bool {
	return p.ID != ""
}

// NormalizeNutriScore lowercases a grade and maps anything outside a-e to
// the empty string, which callers render as the neutral badge.
func NormalizeNutriScore(grade string) string {
	g := strings.ToLower(strings.TrimSpace(grade))
	switch g {
	case "a", "b", "c", "d", "e":
		return g
	}
	return ""
}

type TrainingProgram struct {
	ID            string     `json:"id"`
	TotalCalories int        `json:"totalCalories"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Type          string     `json:"type"`
	Exercises     []Exercise `json:"exercises"`
}

type Exercise struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Muscles     []string `json:"muscles"`
	Series      int      `json:"series"`
	Repetitions int      `json:"repetitions"`
	Calories    int      `json:"calories"`
	Image       string   `json:"image"`
}

// Dish is the AI recommendation payload. The backend capitalizes these
// field names; ExtraFood lists ingredients not found in the fridge.
type Dish struct {
	ID              string   `json:"id"`
	Name            string   `json:"Name"`
	Description     string   `json:"Description"`
	Food            []string `json:"Food"`
	ExtraFood       []string `json:"ExtraFood"`
	PreparationStep []string `json:"PreparationStep"`
	CookTime        string   `json:"CookTime"`
}
