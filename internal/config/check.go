package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/harrison/fsnamer/internal/models"
)

// keyDelimiter separates nested keys. Group names may contain dots, so viper's
// default delimiter cannot be used.
const keyDelimiter = "::"

// CheckConfig is a loaded check configuration.
type CheckConfig struct {
	// Source is the file the configuration was read from.
	Source string
	// Groups are sorted by name.
	Groups []models.CheckGroup
}

// LoadCheckConfig reads a check configuration. The format follows the file
// extension (toml, yaml, yml or json). Group paths and ignore files are
// resolved relative to the configuration file's directory.
//
//	[paths.docs]
//	path = "docs"
//	pattern = '^[a-z0-9-]+\.md$'
//	ignore = ["docs/.checkignore"]
//	exclude = ["drafts/"]
//	recursive = true
func LoadCheckConfig(path string) (*CheckConfig, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &models.ConfigError{Source: path, Err: fmt.Errorf("could not read config file: %w", err)}
	}

	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, &models.ConfigError{Source: path, Err: err}
	}

	paths := v.GetStringMap("paths")
	if len(paths) == 0 {
		return nil, &models.ConfigError{Source: path, Err: errors.New("no paths defined")}
	}

	baseDir := filepath.Dir(path)
	cfg := &CheckConfig{Source: path}
	for name := range paths {
		key := func(field string) string {
			return strings.Join([]string{"paths", name, field}, keyDelimiter)
		}

		group := models.CheckGroup{
			Name:      name,
			Path:      v.GetString(key("path")),
			Pattern:   v.GetString(key("pattern")),
			Ignore:    v.GetStringSlice(key("ignore")),
			Exclude:   v.GetStringSlice(key("exclude")),
			Recursive: true,
		}
		if v.IsSet(key("recursive")) {
			group.Recursive = v.GetBool(key("recursive"))
		}

		if group.Path == "" {
			return nil, &models.ConfigError{Source: path, Err: fmt.Errorf("group %s: path not specified", name)}
		}
		if group.Pattern == "" {
			return nil, &models.ConfigError{Source: path, Err: fmt.Errorf("group %s: pattern not specified", name)}
		}

		group.Path = resolveFrom(baseDir, group.Path)
		for i, f := range group.Ignore {
			group.Ignore[i] = resolveFrom(baseDir, f)
		}

		cfg.Groups = append(cfg.Groups, group)
	}

	sort.Slice(cfg.Groups, func(i, j int) bool {
		return cfg.Groups[i].Name < cfg.Groups[j].Name
	})

	return cfg, nil
}

// Select returns the groups with the given names, in configuration order.
// Names are matched case-insensitively. No names selects every group.
func (c *CheckConfig) Select(names []string) ([]models.CheckGroup, error) {
	if len(names) == 0 {
		return c.Groups, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[strings.ToLower(n)] = true
	}

	var selected []models.CheckGroup
	for _, g := range c.Groups {
		key := strings.ToLower(g.Name)
		if wanted[key] {
			selected = append(selected, g)
			delete(wanted, key)
		}
	}

	if len(wanted) > 0 {
		unknown := make([]string, 0, len(wanted))
		for n := range wanted {
			unknown = append(unknown, n)
		}
		sort.Strings(unknown)
		return nil, &models.ConfigError{Source: c.Source, Err: fmt.Errorf("unknown group(s): %s", strings.Join(unknown, ", "))}
	}

	return selected, nil
}
