package nutrifit

import (
	"os"
	"time"

	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/api"
	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/app"
	"github.com/NutriFit-Master2-Project/nutrifit-client/internal/session"
)

func resolveBaseURL() string {
	if baseURL != "" {
		return baseURL
	}
	if env := os.Getenv("NUTRIFIT_BASE_URL"); env != "" {
		return env
	}
	return api.DefaultBaseURL
}

func resolveSessionPath() (string, error) {
	if sessionFile != "" {
		return sessionFile, nil
	}
	if env := os.Getenv("NUTRIFIT_SESSION_FILE"); env != "" {
		return env, nil
	}
	return app.DefaultSessionPath()
}

func newClient() (*api.Client, error) {
	path, err := resolveSessionPath()
	if err != nil {
		return nil, err
	}
	return api.New(resolveBaseURL(), session.NewFile(path)), nil
}

func withClient(run func(*api.Client) error) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	return run(client)
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// dateOrToday validates an optional --date flag value.
func dateOrToday(flag string) (string, error) {
	if flag == "" {
		return today(), nil
	}
	if _, err := time.Parse("2006-01-02", flag); err != nil {
		return "", &api.Error{Kind: api.KindInvalidRequest, Message: "invalid --date " + flag + " (expected YYYY-MM-DD)"}
	}
	return flag, nil
}
