package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/harrison/fsnamer/internal/ignore"
)

// AppName names the per-user configuration directory.
const AppName = "fsnamer"

// Paths resolves platform-dependent locations. The zero value reads the
// process environment and runtime.GOOS; tests substitute both.
type Paths struct {
	Getenv func(string) string
	GOOS   string
}

func (p Paths) getenv(key string) string {
	if p.Getenv == nil {
		return os.Getenv(key)
	}
	return p.Getenv(key)
}

func (p Paths) goos() string {
	if p.GOOS == "" {
		return runtime.GOOS
	}
	return p.GOOS
}

// GlobalIgnorePath returns the per-user ignore file location:
//   - Windows: %USERPROFILE%\AppData\Local\fsnamer\ignore
//   - elsewhere: $XDG_CONFIG_HOME/fsnamer/ignore, falling back to
//     $HOME/.config/fsnamer/ignore
func (p Paths) GlobalIgnorePath() (string, error) {
	if p.goos() == "windows" {
		profile := p.getenv("USERPROFILE")
		if profile == "" {
			return "", fmt.Errorf("USERPROFILE is not set")
		}
		return filepath.Join(profile, "AppData", "Local", AppName, "ignore"), nil
	}

	if xdg := p.getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName, "ignore"), nil
	}

	home := p.getenv("HOME")
	if home == "" {
		return "", fmt.Errorf("HOME is not set")
	}
	return filepath.Join(home, ".config", AppName, "ignore"), nil
}

// GlobalIgnore returns the per-user ignore source. A missing file, or a
// platform where the location cannot be determined, yields no rules.
func (p Paths) GlobalIgnore() ignore.Source {
	path, err := p.GlobalIgnorePath()
	if err != nil {
		return ignore.OptionalFile("")
	}
	return ignore.OptionalFile(path)
}

// FindProjectDir walks up from start looking for a .fsnamer directory and
// returns the directory that contains it.
func FindProjectDir(start string) (string, error) {
	current, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		marker := filepath.Join(current, SettingsDir)
		if info, err := os.Stat(marker); err == nil && info.IsDir() {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	return "", fmt.Errorf("no %s directory found above %s", SettingsDir, start)
}

// LoadSettings loads the tool settings. An explicit path wins; otherwise the
// nearest .fsnamer/config.yaml above start is used, and defaults apply when
// there is none.
func LoadSettings(explicit, start string) (*Config, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return nil, fmt.Errorf("settings file: %w", err)
		}
		return LoadConfig(explicit)
	}

	dir, err := FindProjectDir(start)
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadConfigFromDir(dir)
}
