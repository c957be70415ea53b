/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package config loads and persists the user-editable YAML configuration.
// Environment variables are treated as read-only overrides at runtime.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// config_version: bump when the structure changes in a backward-incompatible way.
// Unknown fields are ignored on unmarshal, so the file can carry extras.

type GeneralConfig struct {
	HistoryEnabled bool `yaml:"history_enabled"`
	TelemetryOptIn bool `yaml:"telemetry_opt_in"`
}

type ExportConfig struct {
	Paper         string `yaml:"paper"`    // "a4" | "b5" | "a5"
	PDFFont       string `yaml:"pdf_font"` // optional path to a TTF with CJK coverage
	PageSeparator string `yaml:"page_separator"`
}

type HistoryConfig struct {
	Path string `yaml:"path"` // SQLite database file for recorded runs
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	General       GeneralConfig `yaml:"general"`
	Export        ExportConfig  `yaml:"export"`
	History       HistoryConfig `yaml:"history"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		General:       GeneralConfig{HistoryEnabled: false, TelemetryOptIn: false},
		Export:        ExportConfig{Paper: "a4", PDFFont: "", PageSeparator: "\f"},
		History:       HistoryConfig{Path: ""},
		Logging:       LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvHistoryPath    = "TFM_HISTORY_PATH"
	EnvHistoryEnabled = "TFM_HISTORY_ENABLED"
	EnvTelemetryOptIn = "TFM_TELEMETRY_OPT_IN"
	EnvExportPaper    = "TFM_EXPORT_PAPER"
	EnvExportPDFFont  = "TFM_EXPORT_PDF_FONT"
	// EnvLogLevel Logging envs
	EnvLogLevel  = "TFM_LOG_LEVEL"
	EnvLogFormat = "TFM_LOG_FORMAT"
	EnvLogSource = "TFM_LOG_SOURCE"
	EnvLogFile   = "TFM_LOG_FILE"
)

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// ConfigDir returns the per-user configuration directory.
func ConfigDir() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" { // fallback
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "Tatefmt")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "Tatefmt")
	default: // linux and others
		base = filepath.Join(os.Getenv("HOME"), ".config", "tatefmt")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return base, nil
}

// Load reads the user config file (if present), applies defaults, and merges
// environment overrides.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	if data, err := os.ReadFile(path); err == nil {
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			mergeInto(&cfg, &fileCfg)
		}
	}
	applyEnvOverrides(&cfg)
	if cfg.History.Path == "" {
		if dir, err := ConfigDir(); err == nil {
			cfg.History.Path = filepath.Join(dir, "history.sqlite")
		}
	}
	return cfg, nil
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	// booleans: copy directly from src (file) so user preferences persist
	dst.General.HistoryEnabled = src.General.HistoryEnabled
	dst.General.TelemetryOptIn = src.General.TelemetryOptIn
	if strings.TrimSpace(src.Export.Paper) != "" {
		dst.Export.Paper = strings.ToLower(strings.TrimSpace(src.Export.Paper))
	}
	if strings.TrimSpace(src.Export.PDFFont) != "" {
		dst.Export.PDFFont = strings.TrimSpace(src.Export.PDFFont)
	}
	if src.Export.PageSeparator != "" {
		dst.Export.PageSeparator = src.Export.PageSeparator
	}
	if strings.TrimSpace(src.History.Path) != "" {
		dst.History.Path = strings.TrimSpace(src.History.Path)
	}
	// logging
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvHistoryPath)); v != "" {
		cfg.History.Path = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvHistoryEnabled)); v != "" {
		cfg.General.HistoryEnabled = parseBool(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvTelemetryOptIn)); v != "" {
		cfg.General.TelemetryOptIn = parseBool(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvExportPaper)); v != "" {
		cfg.Export.Paper = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvExportPDFFont)); v != "" {
		cfg.Export.PDFFont = v
	}
	// logging overrides
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		cfg.Logging.Source = parseBool(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

func parseBool(v string) bool {
	lv := strings.ToLower(strings.TrimSpace(v))
	return lv == "1" || lv == "true" || lv == "on" || lv == "yes"
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	var name string
	switch key {
	case "history.path":
		name = EnvHistoryPath
	case "general.history_enabled":
		name = EnvHistoryEnabled
	case "general.telemetry_opt_in":
		name = EnvTelemetryOptIn
	case "export.paper":
		name = EnvExportPaper
	case "export.pdf_font":
		name = EnvExportPDFFont
	case "logging.level":
		name = EnvLogLevel
	case "logging.format":
		name = EnvLogFormat
	case "logging.source":
		name = EnvLogSource
	case "logging.file":
		name = EnvLogFile
	default:
		return "", false
	}
	if os.Getenv(name) != "" {
		return name, true
	}
	return "", false
}
