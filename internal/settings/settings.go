// Package settings persists the user's preferences in settings.json.
package settings

import (
	"time"
)

const (
	// DefaultPopupCron prompts every quarter hour.
	DefaultPopupCron          = "0,15,30,45 * * * *"
	DefaultStandartWorkDay    = 450
	DefaultStandartDaysInWeek = 5
)

// Setting keys as they appear in settings.json
const (
	KeySoundOn            = "sound_on"
	KeyDataFolder         = "data_folder"
	KeyPopupCron          = "popup_cron"
	KeyWorkSchedule       = "work_schedule"
	KeyStandartWorkDay    = "standart_work_day"
	KeyStandartDaysInWeek = "standart_days_in_week"
	KeyWoggerMode         = "wogger_mode"
	KeyShowWeekOverview   = "show_week_overview"
)

// Settings is the persisted preferences record
type Settings struct {
	SoundOn            bool           `json:"sound_on"`
	DataFolder         string         `json:"data_folder"`
	PopupCron          string         `json:"popup_cron"`
	WorkSchedule       map[string]int `json:"work_schedule"`
	StandartWorkDay    int            `json:"standart_work_day"`
	StandartDaysInWeek int            `json:"standart_days_in_week"`
	WoggerMode         bool           `json:"wogger_mode"`
	ShowWeekOverview   bool           `json:"show_week_overview"`
}

// DefaultWorkSchedule returns a fresh Mon-Thu 450, Fri 390, weekend 0 schedule
func DefaultWorkSchedule() map[string]int {
	return map[string]int{
		time.Monday.String():    450,
		time.Tuesday.String():   450,
		time.Wednesday.String(): 450,
		time.Thursday.String():  450,
		time.Friday.String():    390,
		time.Saturday.String():  0,
		time.Sunday.String():    0,
	}
}

// Defaults returns the built-in settings with the given data folder
func Defaults(dataFolder string) Settings {
	return Settings{
		SoundOn:            true,
		DataFolder:         dataFolder,
		PopupCron:          DefaultPopupCron,
		WorkSchedule:       DefaultWorkSchedule(),
		StandartWorkDay:    DefaultStandartWorkDay,
		StandartDaysInWeek: DefaultStandartDaysInWeek,
		WoggerMode:         false,
		ShowWeekOverview:   false,
	}
}

// Clone returns a deep copy
func (s Settings) Clone() Settings {
	clone := s
	clone.WorkSchedule = make(map[string]int, len(s.WorkSchedule))
	for day, minutes := range s.WorkSchedule {
		clone.WorkSchedule[day] = minutes
	}
	return clone
}

// ExpectedMinutes returns the scheduled minutes for a weekday, 0 when unset
func (s Settings) ExpectedMinutes(day time.Weekday) int {
	return s.WorkSchedule[day.String()]
}
