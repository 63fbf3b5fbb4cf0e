package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wogger/internal/validation"
)

func newTestStore(t *testing.T, opts ...Option) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "settings.json"), filepath.Join(dir, "data"), opts...)
	return store, dir
}

func TestStore_LoadMissingFileUsesDefaults(t *testing.T) {
	store, dir := newTestStore(t)

	require.NoError(t, store.Load())

	assert.Equal(t, Defaults(filepath.Join(dir, "data")), store.Get())
	assert.DirExists(t, filepath.Join(dir, "data"), "data folder is created on load")
}

func TestStore_LoadMergesOverDefaults(t *testing.T) {
	store, dir := newTestStore(t)
	custom := filepath.Join(dir, "elsewhere")
	content := `{"sound_on": false, "data_folder": "` + filepath.ToSlash(custom) + `", "work_schedule": {"Friday": 300}}`
	require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0644))

	require.NoError(t, store.Load())
	st := store.Get()

	assert.False(t, st.SoundOn)
	assert.Equal(t, filepath.ToSlash(custom), st.DataFolder)
	assert.Equal(t, DefaultPopupCron, st.PopupCron)
	assert.Equal(t, 300, st.WorkSchedule["Friday"])
	assert.Equal(t, 450, st.WorkSchedule["Monday"], "missing weekdays fall back to defaults")
	assert.Equal(t, DefaultStandartWorkDay, st.StandartWorkDay)
	assert.DirExists(t, custom)
}

func TestStore_LoadCorruptFileUsesDefaults(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "{sound_on: nope"},
		{"wrong type", `{"sound_on": "loud", "popup_cron": "0 * * * *"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, dir := newTestStore(t)
			require.NoError(t, os.WriteFile(store.Path(), []byte(tt.content), 0644))

			require.NoError(t, store.Load())
			assert.Equal(t, Defaults(filepath.Join(dir, "data")), store.Get())
		})
	}
}

func TestStore_SaveAndReload(t *testing.T) {
	store, dir := newTestStore(t)
	require.NoError(t, store.Load())

	store.Update(func(s *Settings) {
		s.WoggerMode = true
		s.WorkSchedule["Saturday"] = 120
	})
	require.NoError(t, store.Save())

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	var onDisk map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	assert.Equal(t, true, onDisk["wogger_mode"])
	assert.Contains(t, string(raw), "\n    \"sound_on\"", "settings are indented with four spaces")

	reloaded := NewStore(store.Path(), filepath.Join(dir, "data"))
	require.NoError(t, reloaded.Load())
	assert.Equal(t, store.Get(), reloaded.Get())
}

func TestStore_ResetDefaultsDoesNotSave(t *testing.T) {
	store, dir := newTestStore(t)
	require.NoError(t, store.Load())
	require.NoError(t, store.Set(KeyPopupCron, "0 * * * *"))
	require.NoError(t, store.Save())

	require.NoError(t, store.ResetDefaults())
	assert.Equal(t, DefaultPopupCron, store.Get().PopupCron)

	reloaded := NewStore(store.Path(), filepath.Join(dir, "data"))
	require.NoError(t, reloaded.Load())
	assert.Equal(t, "0 * * * *", reloaded.Get().PopupCron, "reset must not touch the file")
}

func TestStore_GetReturnsCopy(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Load())

	st := store.Get()
	st.WorkSchedule["Monday"] = 1

	assert.Equal(t, 450, store.Get().WorkSchedule["Monday"])
}

func TestStore_Set(t *testing.T) {
	tests := []struct {
		key   string
		value string
		check func(t *testing.T, s Settings)
	}{
		{KeySoundOn, "false", func(t *testing.T, s Settings) { assert.False(t, s.SoundOn) }},
		{KeyShowWeekOverview, "1", func(t *testing.T, s Settings) { assert.True(t, s.ShowWeekOverview) }},
		{KeyWoggerMode, "true", func(t *testing.T, s Settings) { assert.True(t, s.WoggerMode) }},
		{KeyPopupCron, "0 9-17 * * 1-5", func(t *testing.T, s Settings) { assert.Equal(t, "0 9-17 * * 1-5", s.PopupCron) }},
		{KeyStandartWorkDay, "480", func(t *testing.T, s Settings) { assert.Equal(t, 480, s.StandartWorkDay) }},
		{KeyStandartDaysInWeek, "4", func(t *testing.T, s Settings) { assert.Equal(t, 4, s.StandartDaysInWeek) }},
		{"work_schedule.Friday", " 420 ", func(t *testing.T, s Settings) { assert.Equal(t, 420, s.WorkSchedule["Friday"]) }},
		{KeyDataFolder, "/tmp/wogger", func(t *testing.T, s Settings) { assert.Equal(t, "/tmp/wogger", s.DataFolder) }},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			store, _ := newTestStore(t)
			require.NoError(t, store.Set(tt.key, tt.value))
			tt.check(t, store.Get())
		})
	}
}

func TestStore_SetRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad cron", KeyPopupCron, "*/15 * * * *"},
		{"cron field count", KeyPopupCron, "0 * * *"},
		{"non-integer minutes", "work_schedule.Monday", "eight hours"},
		{"unknown weekday", "work_schedule.Caturday", "10"},
		{"non-integer work day", KeyStandartWorkDay, "7.5h"},
		{"zero days", KeyStandartDaysInWeek, "0"},
		{"bad bool", KeySoundOn, "loud"},
		{"empty folder", KeyDataFolder, "  "},
		{"unknown key", "theme", "dark"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newTestStore(t)
			before := store.Get()

			err := store.Set(tt.key, tt.value)
			require.Error(t, err)
			assert.True(t, validation.IsValidationError(err))
			assert.Equal(t, before, store.Get(), "rejected values leave settings unchanged")
		})
	}
}

func TestStore_DataDirOverride(t *testing.T) {
	override := filepath.Join(t.TempDir(), "override")
	store, _ := newTestStore(t, WithDataDirOverride(override))

	require.NoError(t, store.Load())
	assert.Equal(t, override, store.DataDir())
	assert.DirExists(t, override)

	require.NoError(t, store.Save())
	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "override", "the override is not written to settings.json")
}

func TestStore_Entries(t *testing.T) {
	store, _ := newTestStore(t)
	entries := store.Entries()

	require.Len(t, entries, 14)
	assert.Equal(t, KeyValue{"sound_on", "true"}, entries[0])
	assert.Equal(t, KeyValue{"work_schedule.Monday", "450"}, entries[3])
	assert.Equal(t, KeyValue{"work_schedule.Sunday", "0"}, entries[9])
	assert.Contains(t, store.String(), "popup_cron = 0,15,30,45 * * * *\n")
}

func TestSettings_ExpectedMinutes(t *testing.T) {
	s := Defaults("")
	assert.Equal(t, 390, s.ExpectedMinutes(time.Friday))
	assert.Equal(t, 0, s.ExpectedMinutes(time.Sunday))

	s.WorkSchedule = nil
	assert.Equal(t, 0, s.ExpectedMinutes(time.Monday))
}
