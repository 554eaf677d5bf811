package api

import (
	"context"
	"net/http"
	"time"

	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/model"
)

const dateLayout = "2006-01-02"

func validDate(date string) bool {
	_, err := time.Parse(dateLayout, date)
	return err == nil
}

// DailyEntryUpdate carries only the fields the caller computed; nil
// fields are left alone by the server.
type DailyEntryUpdate struct {
	Calories     *float64 `json:"calories,omitempty"`
	CaloriesBurn *float64 `json:"caloriesBurn,omitempty"`
	Steps        *float64 `json:"steps,omitempty"`
}

// FetchDailyEntry reads the aggregate record for one date. Partial server
// documents hydrate with zero defaults and the unknown-date sentinel.
func (c *Client) FetchDailyEntry(ctx context.Context, date string) (model.DailyEntry, error) {
	s, err := c.requireSession()
	if err != nil {
		return model.DailyEntry{}, err
	}
	if !validDate(date) {
		return model.DailyEntry{}, invalidRequest("invalid date %q (expected yyyy-MM-dd)", date)
	}
	var entry model.DailyEntry
	if err := c.do(ctx, http.MethodGet, "/api/daily_entries/"+s.UserID+"/entries/"+date, s.Token, nil, &entry); err != nil {
		return model.DailyEntry{}, err
	}
	return entry, nil
}

// UpdateDailyEntry PUTs the given fields and returns the server's view of
// the entry afterwards.
func (c *Client) UpdateDailyEntry(ctx context.Context, date string, update DailyEntryUpdate) (model.DailyEntry, error) {
	s, err := c.requireSession()
	if err != nil {
		return model.DailyEntry{}, err
	}
	if !validDate(date) {
		return model.DailyEntry{}, invalidRequest("invalid date %q (expected yyyy-MM-dd)", date)
	}
	var entry model.DailyEntry
	if err := c.do(ctx, http.MethodPut, "/api/daily_entries/"+s.UserID+"/entries/"+date, s.Token, update, &entry); err != nil {
		return model.DailyEntry{}, err
	}
	return entry, nil
}

// AddCaloriesBurned asks the server to add amount to the day's burned
// total. The addition happens server-side; the client never reads,
// adds and writes back the total itself, which would lose concurrent
// updates.
func (c *Client) AddCaloriesBurned(ctx context.Context, date string, amount float64) error {
	s, err := c.requireSession()
	if err != nil {
		return err
	}
	if !validDate(date) {
		return invalidRequest("invalid date %q (expected yyyy-MM-dd)", date)
	}
	if amount < 0 {
		return invalidRequest("calories to add must be >= 0, got %v", amount)
	}
	body := map[string]float64{"caloriesBurnToAdd": amount}
	return c.do(ctx, http.MethodPost, "/api/daily_entries/"+s.UserID+"/entries/"+date+"/add-calories-burn", s.Token, body, nil)
}
