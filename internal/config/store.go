package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Store keys.
const (
	KeyAPIKey        = "apiKey"
	KeyDefaultTeamID = "defaultTeamId"
)

// EnvPrefix is the prefix of environment variables that override the file.
const EnvPrefix = "LINEAR_"

// envKeys maps recognised environment variables to store keys.
var envKeys = map[string]string{
	"LINEAR_API_KEY":         KeyAPIKey,
	"LINEAR_DEFAULT_TEAM_ID": KeyDefaultTeamID,
}

// Store persists the API token and the default team in a YAML file.
// Reads see environment overrides; writes only ever touch the file layer.
type Store struct {
	path   string
	file   *koanf.Koanf // file contents only, what gets written back
	merged *koanf.Koanf // file + env, what gets read
}

// OpenStore loads the store at path. A missing file is an empty store.
func OpenStore(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.file = koanf.New(".")
	if _, err := os.Stat(s.path); err == nil {
		if err := s.file.Load(file.Provider(s.path), yaml.Parser()); err != nil {
			return fmt.Errorf("failed to read %s: %w", filepath.Base(s.path), err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read %s: %w", filepath.Base(s.path), err)
	}

	s.merged = koanf.New(".")
	if err := s.merged.Merge(s.file); err != nil {
		return err
	}
	envProvider := env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		// Unknown or empty LINEAR_* variables map to "" and are skipped.
		if value == "" {
			return "", nil
		}
		return envKeys[key], value
	})
	if err := s.merged.Load(envProvider, nil); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

// Token returns the stored API token, or "" if none.
func (s *Store) Token() string {
	return s.merged.String(KeyAPIKey)
}

// SetToken stores the API token.
func (s *Store) SetToken(token string) error {
	return s.set(KeyAPIKey, token)
}

// DeleteToken removes the stored API token.
func (s *Store) DeleteToken() error {
	return s.delete(KeyAPIKey)
}

// HasToken reports whether a token is available.
func (s *Store) HasToken() bool {
	return s.Token() != ""
}

// DefaultTeam returns the stored default team, or "" if none.
func (s *Store) DefaultTeam() string {
	return s.merged.String(KeyDefaultTeamID)
}

// SetDefaultTeam stores the default team identifier.
func (s *Store) SetDefaultTeam(teamID string) error {
	return s.set(KeyDefaultTeamID, teamID)
}

func (s *Store) set(key, value string) error {
	if err := s.file.Set(key, value); err != nil {
		return err
	}
	return s.save()
}

func (s *Store) delete(key string) error {
	s.file.Delete(key)
	return s.save()
}

// save writes the file layer with mode 0600 and reloads the merged view.
func (s *Store) save() error {
	data, err := s.file.Marshal(yaml.Parser())
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return s.load()
}
