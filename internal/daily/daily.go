// Package daily creates and appends to date-named notes in a vault.
package daily

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
	"github.com/spf13/viper"

	"github.com/Paintersrp/notehead/internal/vault"
)

// ErrNoFormat is returned when no daily note format is configured.
var ErrNoFormat = errors.New("daily note format is not configured")

// DefaultFormat names daily notes by ISO date.
const DefaultFormat = "%Y-%m-%d"

const (
	noteExt        = ".md"
	settingsFolder = ".obsidian"
	settingsFile   = "daily-notes.json"
)

// Path formats t with the strftime-style format and returns the
// vault-relative note path. The format may contain folders and spaces; the
// .md extension is added unless the format already produces it.
func Path(format string, t time.Time) (string, error) {
	if strings.TrimSpace(format) == "" {
		return "", ErrNoFormat
	}
	p := filepath.ToSlash(strftime.Format(format, t))
	if !strings.HasSuffix(p, noteExt) {
		p += noteExt
	}
	return p, nil
}

// TemplatePath reads the daily note template location from the vault's
// daily-notes settings. It returns "" when no settings file or template is
// configured. The path is vault-relative.
func TemplatePath(vaultRoot string) (string, error) {
	settings := filepath.Join(vaultRoot, settingsFolder, settingsFile)
	if _, err := os.Stat(settings); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("daily: reading settings: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(settings)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("daily: parsing %s: %w", settings, err)
	}

	tmpl := strings.TrimSpace(v.GetString("template"))
	if tmpl == "" {
		return "", nil
	}
	tmpl = filepath.ToSlash(tmpl)
	if filepath.Ext(tmpl) == "" {
		tmpl += noteExt
	}
	return tmpl, nil
}

// Service manages daily notes for one vault.
type Service struct {
	vault  *vault.Vault
	format string
}

// NewService returns a daily note service. An empty format falls back to
// DefaultFormat.
func NewService(v *vault.Vault, format string) *Service {
	if strings.TrimSpace(format) == "" {
		format = DefaultFormat
	}
	return &Service{vault: v, format: format}
}

// Path returns the vault-relative path of the daily note for t.
func (s *Service) Path(t time.Time) (string, error) {
	return Path(s.format, t)
}

// Ensure creates the daily note for t from the configured template when it
// does not exist yet. It returns the note path and whether it was created.
func (s *Service) Ensure(t time.Time) (string, bool, error) {
	rel, err := s.Path(t)
	if err != nil {
		return "", false, err
	}

	exists, err := s.vault.Exists(rel)
	if err != nil {
		return "", false, err
	}
	if exists {
		return rel, false, nil
	}

	content, err := s.template()
	if err != nil {
		return "", false, err
	}
	if err := s.vault.Write(rel, content); err != nil {
		return "", false, err
	}
	return rel, true, nil
}

// Append ensures the daily note for t exists and inserts content under
// header. With create set a missing header is appended to the note.
func (s *Service) Append(t time.Time, header, content string, create bool) (string, error) {
	rel, _, err := s.Ensure(t)
	if err != nil {
		return "", err
	}
	if err := s.vault.InsertUnder(rel, header, content, create); err != nil {
		return "", err
	}
	return rel, nil
}

func (s *Service) template() (string, error) {
	rel, err := TemplatePath(s.vault.Root())
	if err != nil {
		return "", err
	}
	if rel == "" {
		return "", nil
	}
	content, err := s.vault.Read(rel)
	if err != nil {
		return "", fmt.Errorf("daily: loading template: %w", err)
	}
	return content, nil
}
