/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Alisher Nurmanov
 */

package profiles

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/untillpro/goutils/logger"
	"gopkg.in/yaml.v3"

	"github.com/hivesched/hivesched/pkg/schedule"
)

const profilesFileMode = 0644

// Store reads named day schedules from a user-editable YAML file.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load re-reads the profiles file on every call so edits take effect
// without restarts. A missing file is created with the default
// content, an unreadable or broken one falls back to the built-in
// profiles with a logged error.
func (s *Store) Load() map[string]schedule.DaySchedule {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		logger.Info("creating default profiles file:", s.path)
		if err := s.create(); err != nil {
			logger.Error(err.Error())
			return Defaults()
		}
	}
	content, err := os.ReadFile(s.path)
	if err != nil {
		logger.Error("failed to load profiles from", s.path+":", err.Error())
		return Defaults()
	}
	loaded := map[string]schedule.DaySchedule{}
	if err := yaml.Unmarshal(content, &loaded); err != nil {
		logger.Error("failed to load profiles from", s.path+":", err.Error())
		return Defaults()
	}
	logger.Verbose("loaded", len(loaded), "profiles from", s.path)
	return loaded
}

// Get resolves a profile by name. The error of an unknown name lists
// what is available.
func (s *Store) Get(name string) (schedule.DaySchedule, error) {
	loaded := s.Load()
	ds, ok := loaded[name]
	if !ok {
		return nil, fmt.Errorf(errUnknownProfile, name, strings.Join(names(loaded), ", "), ErrUnknownProfile)
	}
	return ds, nil
}

// Init creates the default profiles file, refusing to touch an
// existing one.
func (s *Store) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf(errCannotCreate, s.path, ErrProfilesFileExists)
	}
	return s.create()
}

func (s *Store) create() error {
	if err := os.WriteFile(s.path, []byte(defaultProfilesYAML), profilesFileMode); err != nil {
		return fmt.Errorf(errCannotCreate, err.Error(), ErrCannotCreateProfile)
	}
	return nil
}

func names(profiles map[string]schedule.DaySchedule) []string {
	nn := make([]string, 0, len(profiles))
	for name := range profiles {
		nn = append(nn, name)
	}
	sort.Strings(nn)
	return nn
}
