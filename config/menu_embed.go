package config

import (
	_ "embed"
	"fmt"

	"burger-cli/models"
)

// Embed the default menu so the binary runs from any working directory.
//
//go:embed default_menu.yaml
var defaultMenuYAML []byte

// DefaultMenu returns a fresh copy of the built-in menu.
func DefaultMenu() (*models.Menu, error) {
	m, err := ParseMenu(defaultMenuYAML)
	if err != nil {
		return nil, fmt.Errorf("built-in menu: %w", err)
	}
	return m, nil
}
