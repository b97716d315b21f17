package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/all-dot-files/timer/internal/models"
	"github.com/all-dot-files/timer/internal/storage/text"
)

const (
	DefaultConfigDir  = ".config/timer"
	DefaultConfigFile = "config.yaml"
)

// Manager loads the settings file. The file is optional and never written.
type Manager struct {
	configPath string
	config     *models.Config
}

// NewManager creates a new configuration manager
func NewManager(configPath string) (*Manager, error) {
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = filepath.Join(home, DefaultConfigDir, DefaultConfigFile)
	}

	return &Manager{configPath: configPath}, nil
}

// GetConfigPath returns the path to the configuration file
func (m *Manager) GetConfigPath() string {
	return m.configPath
}

// Load loads the configuration from disk. A missing file yields defaults.
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			m.config = models.DefaultConfig()
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	config := models.DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", m.configPath, err)
	}

	m.config = config
	return nil
}

// Get returns the current configuration
func (m *Manager) Get() *models.Config {
	if m.config == nil {
		m.config = models.DefaultConfig()
	}
	return m.config
}

// StatePath resolves the state file location. override (from --file) wins
// over the settings file, which wins over $HOME/.timerconfig.
func (m *Manager) StatePath(override string) (string, error) {
	if override != "" {
		return expandHome(override)
	}
	if p := m.Get().StateFile; p != "" {
		return expandHome(p)
	}
	return text.DefaultPath()
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
