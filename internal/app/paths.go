package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName      = "nutrifit"
	sessionFileName = "session.json"
)

// DefaultSessionPath is where the signed-in token/userId pair lives when
// no explicit path is configured. This file is the entire local
// persistence footprint of the client.
func DefaultSessionPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, sessionFileName), nil
}
