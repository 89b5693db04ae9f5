package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle       = "app_title"
	KeyAppSubtitle    = "app_subtitle"
	KeyStartGame      = "start_game"
	KeyLaunchError    = "launch_error"
	KeyProfile        = "profile"
	KeyEditProfile    = "edit_profile"
	KeyProfileName    = "profile_name"
	KeyLevel          = "level"
	KeyGamesPlayed    = "games_played"
	KeyLevelProgress  = "level_progress"
	KeyFilters        = "filters"
	KeyCategory       = "category"
	KeySearch         = "search"
	KeyStatistics     = "statistics"
	KeySessionMinutes = "session_minutes"
	KeyStreakDays     = "streak_days"
	KeyRefreshStats   = "refresh_stats"
	KeyRecentActivity = "recent_activity"
	KeyNoActivity     = "no_activity"
	KeyTheme          = "theme"
	KeyAccentColor    = "accent_color"
	KeySave           = "save"
	KeyCancel         = "cancel"
	KeyGameStarted    = "game_started"
	KeyFooter         = "footer"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetCurrentLanguage returns the active language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// initializeTexts fills in the translation tables
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:       "PDSA Games Portal",
		KeyAppSubtitle:    "Explore algorithm concepts through interactive games",
		KeyStartGame:      "START GAME",
		KeyLaunchError:    "Launch Error",
		KeyProfile:        "Profile",
		KeyEditProfile:    "Edit Profile",
		KeyProfileName:    "Name",
		KeyLevel:          "Level",
		KeyGamesPlayed:    "Games played",
		KeyLevelProgress:  "Level progress",
		KeyFilters:        "Filters",
		KeyCategory:       "Category",
		KeySearch:         "Search games",
		KeyStatistics:     "Statistics",
		KeySessionMinutes: "Minutes this session",
		KeyStreakDays:     "Day streak",
		KeyRefreshStats:   "Refresh",
		KeyRecentActivity: "Recent activity",
		KeyNoActivity:     "No games launched yet",
		KeyTheme:          "Theme",
		KeyAccentColor:    "Accent color",
		KeySave:           "Save",
		KeyCancel:         "Cancel",
		KeyGameStarted:    "Game started",
		KeyFooter:         "© 2025 PDSA Games Portal - Educational Tool for Algorithm Visualization",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:       "Портал игр PDSA",
		KeyAppSubtitle:    "Изучайте алгоритмы через интерактивные игры",
		KeyStartGame:      "ИГРАТЬ",
		KeyLaunchError:    "Ошибка запуска",
		KeyProfile:        "Профиль",
		KeyEditProfile:    "Редактировать профиль",
		KeyProfileName:    "Имя",
		KeyLevel:          "Уровень",
		KeyGamesPlayed:    "Сыграно игр",
		KeyLevelProgress:  "Прогресс уровня",
		KeyFilters:        "Фильтры",
		KeyCategory:       "Категория",
		KeySearch:         "Поиск игр",
		KeyStatistics:     "Статистика",
		KeySessionMinutes: "Минут за сессию",
		KeyStreakDays:     "Дней подряд",
		KeyRefreshStats:   "Обновить",
		KeyRecentActivity: "Недавняя активность",
		KeyNoActivity:     "Игры ещё не запускались",
		KeyTheme:          "Тема",
		KeyAccentColor:    "Цвет акцента",
		KeySave:           "Сохранить",
		KeyCancel:         "Отмена",
		KeyGameStarted:    "Игра запущена",
		KeyFooter:         "© 2025 Портал игр PDSA - Обучающий инструмент визуализации алгоритмов",
	}
}

// GetAvailableLanguages returns the selectable languages
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}
