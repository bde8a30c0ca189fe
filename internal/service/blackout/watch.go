package blackout

import (
	"context"
	"os"
	"time"
)

// DefaultWatchInterval период проверки файла блэкаутов
const DefaultWatchInterval = 30 * time.Second

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Watch загружает файл и перечитывает его при изменении mtime, вызывая onUpdate.
// Первичная загрузка выполняется синхронно, её ошибка возвращается.
// Ошибки последующих перезагрузок логируются, прежний календарь остаётся в силе.
func Watch(ctx context.Context, path string, interval time.Duration, logger Logger, onUpdate func(*Calendar)) error {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}

	calendar, err := Load(path)
	if err != nil {
		return err
	}
	onUpdate(calendar)

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	lastMod := info.ModTime()

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				info, err := os.Stat(path)
				if err != nil {
					logger.Warn("blackout.Watch: stat %s: %v", path, err)
					continue
				}
				if !info.ModTime().After(lastMod) {
					continue
				}
				calendar, err := Load(path)
				if err != nil {
					logger.Warn("blackout.Watch: reload %s: %v", path, err)
					continue
				}
				lastMod = info.ModTime()
				onUpdate(calendar)
				logger.Info("blackout.Watch: reloaded %s, %d entries", path, calendar.Len())
			}
		}
	}()

	return nil
}
