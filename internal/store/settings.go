package store

import "github.com/trentd187/golf-companion/internal/models"

// Each settings record is patched field by field and never validated here;
// the caller owns the shape of the values.

// VoiceSettings returns the voice assistant's settings.
func (s *Store) VoiceSettings() models.VoiceSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.voiceSettings
}

// UpdateVoiceSettings applies patch to the voice settings and returns the
// result. Fields left nil in the patch keep their value.
func (s *Store) UpdateVoiceSettings(patch models.VoiceSettingsPatch) models.VoiceSettings {
	s.mu.Lock()
	defer s.unlock()

	s.voiceSettings = patch.Apply(s.voiceSettings)
	s.changedLocked(TopicSettings, "voice.updated", "")
	return s.voiceSettings
}

// SmartwatchSettings returns the paired watch's settings.
func (s *Store) SmartwatchSettings() models.SmartwatchSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.smartwatchSettings
}

// UpdateSmartwatchSettings applies patch to the smartwatch settings and
// returns the result.
func (s *Store) UpdateSmartwatchSettings(patch models.SmartwatchSettingsPatch) models.SmartwatchSettings {
	s.mu.Lock()
	defer s.unlock()

	s.smartwatchSettings = patch.Apply(s.smartwatchSettings)
	s.changedLocked(TopicSettings, "smartwatch.updated", "")
	return s.smartwatchSettings
}

// UserSettings returns the app-wide preferences (theme, units, language, ...).
func (s *Store) UserSettings() models.UserSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userSettings
}

// UpdateUserSettings applies patch to the app-wide preferences and returns
// the result.
func (s *Store) UpdateUserSettings(patch models.UserSettingsPatch) models.UserSettings {
	s.mu.Lock()
	defer s.unlock()

	s.userSettings = patch.Apply(s.userSettings)
	s.changedLocked(TopicSettings, "user.updated", "")
	return s.userSettings
}
