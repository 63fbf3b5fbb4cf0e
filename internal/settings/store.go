package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"wogger/internal/errors"
	"wogger/internal/logging"
	"wogger/internal/validation"
)

const workSchedulePrefix = KeyWorkSchedule + "."

// KeyValue is one displayable setting
type KeyValue struct {
	Key   string
	Value string
}

// Store owns settings.json. Changes are made in memory and only written by Save.
type Store struct {
	mu          sync.RWMutex
	path        string
	defaultData string
	dataDir     string
	dirPerm     os.FileMode
	current     Settings
	validator   *validation.SettingsValidator
}

// Option configures a Store
type Option func(*Store)

// WithDataDirOverride makes DataDir return dir regardless of data_folder.
// settings.json is not rewritten.
func WithDataDirOverride(dir string) Option {
	return func(s *Store) {
		s.dataDir = dir
	}
}

// WithDirPermissions sets the mode used when creating the data folder
func WithDirPermissions(perm os.FileMode) Option {
	return func(s *Store) {
		s.dirPerm = perm
	}
}

// NewStore creates a store for the settings file at path. defaultDataFolder
// is used for data_folder when the file does not set it.
func NewStore(path, defaultDataFolder string, opts ...Option) *Store {
	s := &Store{
		path:        path,
		defaultData: defaultDataFolder,
		dirPerm:     0755,
		current:     Defaults(defaultDataFolder),
		validator:   validation.NewSettingsValidator(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the settings file location
func (s *Store) Path() string {
	return s.path
}

// Load merges the persisted JSON over the defaults. work_schedule merges per
// weekday, so days missing from the file keep their default minutes. A
// missing file yields defaults; an unreadable or corrupt file yields defaults
// as well. The data folder is created in every case.
func (s *Store) Load() error {
	loaded := Defaults(s.defaultData)

	data, err := os.ReadFile(s.path)
	switch {
	case err == nil:
		merged := loaded.Clone()
		if jsonErr := json.Unmarshal(data, &merged); jsonErr != nil {
			logging.Debugf("settings file %s is corrupt, using defaults: %v\n", s.path, jsonErr)
		} else {
			loaded = merged
		}
	case os.IsNotExist(err):
		logging.Debugf("no settings file at %s, using defaults\n", s.path)
	default:
		logging.Debugf("cannot read settings file %s, using defaults: %v\n", s.path, err)
	}

	if loaded.DataFolder == "" {
		loaded.DataFolder = s.defaultData
	}

	s.mu.Lock()
	s.current = loaded
	s.mu.Unlock()

	return s.ensureDataFolder()
}

// Save writes the in-memory settings to disk
func (s *Store) Save() error {
	if err := s.ensureDataFolder(); err != nil {
		return err
	}

	s.mu.RLock()
	data, err := json.MarshalIndent(s.current, "", "    ")
	s.mu.RUnlock()
	if err != nil {
		return errors.WrapError(err, errors.ErrorTypeIO, "encode settings")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), s.dirPerm); err != nil {
		return errors.NewIOError("create settings folder", filepath.Dir(s.path), err)
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0644); err != nil {
		return errors.NewIOError("write", s.path, err)
	}

	logging.Debugf("saved settings to %s\n", s.path)
	return nil
}

// ResetDefaults reverts the in-memory settings without saving
func (s *Store) ResetDefaults() error {
	s.mu.Lock()
	s.current = Defaults(s.defaultData)
	s.mu.Unlock()
	return s.ensureDataFolder()
}

// Get returns a copy of the current settings
func (s *Store) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Update applies fn to the in-memory settings
func (s *Store) Update(fn func(*Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.current)
}

// DataDir returns the effective data folder
func (s *Store) DataDir() string {
	if s.dataDir != "" {
		return s.dataDir
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current.DataFolder != "" {
		return s.current.DataFolder
	}
	return s.defaultData
}

func (s *Store) ensureDataFolder() error {
	dir := s.DataDir()
	if err := os.MkdirAll(dir, s.dirPerm); err != nil {
		return errors.NewIOError("create data folder", dir, err)
	}
	return nil
}

// Set parses a string value for key and applies it in memory.
// work_schedule.<Weekday> sets a single day.
func (s *Store) Set(key, value string) error {
	value = strings.TrimSpace(value)

	if day, ok := strings.CutPrefix(key, workSchedulePrefix); ok {
		minutes, err := parseInt(key, value)
		if err != nil {
			return err
		}
		if err := s.validator.ValidateWorkSchedule(map[string]int{day: minutes}); err != nil {
			return err
		}
		s.Update(func(st *Settings) {
			if st.WorkSchedule == nil {
				st.WorkSchedule = make(map[string]int)
			}
			st.WorkSchedule[day] = minutes
		})
		return nil
	}

	switch key {
	case KeySoundOn, KeyWoggerMode, KeyShowWeekOverview:
		b, err := strconv.ParseBool(value)
		if err != nil {
			ve := validation.NewValidationError()
			ve.AddInvalidValueError(key, value, "must be true or false")
			return ve
		}
		s.Update(func(st *Settings) {
			switch key {
			case KeySoundOn:
				st.SoundOn = b
			case KeyWoggerMode:
				st.WoggerMode = b
			case KeyShowWeekOverview:
				st.ShowWeekOverview = b
			}
		})

	case KeyDataFolder:
		if value == "" {
			ve := validation.NewValidationError()
			ve.AddRequiredError(key)
			return ve
		}
		s.Update(func(st *Settings) { st.DataFolder = value })

	case KeyPopupCron:
		if err := s.validator.ValidateCron(value); err != nil {
			return err
		}
		s.Update(func(st *Settings) { st.PopupCron = value })

	case KeyStandartWorkDay, KeyStandartDaysInWeek:
		n, err := parseInt(key, value)
		if err != nil {
			return err
		}
		current := s.Get()
		workDay, days := current.StandartWorkDay, current.StandartDaysInWeek
		if key == KeyStandartWorkDay {
			workDay = n
		} else {
			days = n
		}
		if err := s.validator.ValidateFormatting(workDay, days); err != nil {
			return err
		}
		s.Update(func(st *Settings) {
			st.StandartWorkDay = workDay
			st.StandartDaysInWeek = days
		})

	default:
		ve := validation.NewValidationError()
		ve.AddInvalidValueError("key", key, "unknown setting")
		return ve
	}

	return nil
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		ve := validation.NewValidationError()
		ve.AddInvalidFormatError(key, value, "an integer number of minutes")
		return 0, ve
	}
	return n, nil
}

// Entries lists every setting as display strings; weekdays appear in week order
func (s *Store) Entries() []KeyValue {
	st := s.Get()
	entries := []KeyValue{
		{KeySoundOn, strconv.FormatBool(st.SoundOn)},
		{KeyDataFolder, st.DataFolder},
		{KeyPopupCron, st.PopupCron},
	}

	seen := make(map[string]bool)
	for _, day := range validation.Weekdays {
		if minutes, ok := st.WorkSchedule[day]; ok {
			entries = append(entries, KeyValue{workSchedulePrefix + day, strconv.Itoa(minutes)})
			seen[day] = true
		}
	}
	var extra []string
	for day := range st.WorkSchedule {
		if !seen[day] {
			extra = append(extra, day)
		}
	}
	sort.Strings(extra)
	for _, day := range extra {
		entries = append(entries, KeyValue{workSchedulePrefix + day, strconv.Itoa(st.WorkSchedule[day])})
	}

	return append(entries,
		KeyValue{KeyStandartWorkDay, strconv.Itoa(st.StandartWorkDay)},
		KeyValue{KeyStandartDaysInWeek, strconv.Itoa(st.StandartDaysInWeek)},
		KeyValue{KeyWoggerMode, strconv.FormatBool(st.WoggerMode)},
		KeyValue{KeyShowWeekOverview, strconv.FormatBool(st.ShowWeekOverview)},
	)
}

// String renders the settings as "key = value" lines
func (s *Store) String() string {
	var b strings.Builder
	for _, kv := range s.Entries() {
		fmt.Fprintf(&b, "%s = %s\n", kv.Key, kv.Value)
	}
	return b.String()
}
