// internal/config/settings.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"
)

// DefaultImagePath — путь к спрайту кометы, если другой не задан
const DefaultImagePath = "CometAnimation/Comet.png"

// ErrInvalidSettings возвращается, когда значения настроек не имеют смысла.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings — распознаваемые параметры эффекта
type Settings struct {
	DurationMs       int     `json:"duration_ms"`
	PostExitDelayMs  int     `json:"post_exit_delay_ms"`
	HeadingOffsetDeg float64 `json:"heading_offset_deg"`
	ImagePath        string  `json:"image_path"`
	Seed             int64   `json:"seed"`
	SpriteSizePx     int     `json:"sprite_size_px"`
	ReadyPollMs      int     `json:"ready_poll_ms"`
	ShowOverlay      bool    `json:"show_overlay"`
}

// Default возвращает настройки по умолчанию.
func Default() Settings {
	return Settings{
		DurationMs:       4000,
		PostExitDelayMs:  3000,
		HeadingOffsetDeg: 90,
		ImagePath:        DefaultImagePath,
		SpriteSizePx:     64,
		ReadyPollMs:      50,
	}
}

// Duration — время полёта и затухания одной кометы
func (s Settings) Duration() time.Duration {
	return time.Duration(s.DurationMs) * time.Millisecond
}

// PostExitDelay — пауза после исчезновения кометы
func (s Settings) PostExitDelay() time.Duration {
	return time.Duration(s.PostExitDelayMs) * time.Millisecond
}

// SpawnPeriod — интервал между стартами соседних комет
func (s Settings) SpawnPeriod() time.Duration {
	return s.Duration() + s.PostExitDelay()
}

// ReadyPoll — как часто проверять готовность поверхности
func (s Settings) ReadyPoll() time.Duration {
	return time.Duration(s.ReadyPollMs) * time.Millisecond
}

// Validate проверяет настройки на корректность.
func (s Settings) Validate() error {
	switch {
	case s.DurationMs <= 0:
		return fmt.Errorf("%w: duration_ms must be positive, got %d", ErrInvalidSettings, s.DurationMs)
	case s.PostExitDelayMs < 0:
		return fmt.Errorf("%w: post_exit_delay_ms must not be negative, got %d", ErrInvalidSettings, s.PostExitDelayMs)
	case s.SpriteSizePx <= 0:
		return fmt.Errorf("%w: sprite_size_px must be positive, got %d", ErrInvalidSettings, s.SpriteSizePx)
	case s.ReadyPollMs <= 0:
		return fmt.Errorf("%w: ready_poll_ms must be positive, got %d", ErrInvalidSettings, s.ReadyPollMs)
	}
	return nil
}

// Load читает настройки из JSON-файла поверх значений по умолчанию.
// Отсутствующий файл не считается ошибкой.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	file, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("Config %s not found, using defaults", path)
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := json.Unmarshal(file, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if s.ImagePath == "" {
		s.ImagePath = DefaultImagePath
	}
	if err := s.Validate(); err != nil {
		return s, err
	}

	log.Printf("Loaded settings from %s", path)
	return s, nil
}
