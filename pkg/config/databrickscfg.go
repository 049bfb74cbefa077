package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sdkconfig "github.com/databricks/databricks-sdk-go/config"
	"gopkg.in/ini.v1"
)

// ProfileRegistry reads connection profiles from a .databrickscfg file.
type ProfileRegistry interface {
	GetProfiles() ([]string, error)
	GetConfig(profile string) (*sdkconfig.Config, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewProfileRegistry(path string) (ProfileRegistry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load databricks profiles: %w", err)
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles() ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetConfig(profile string) (*sdkconfig.Config, error) {
	section, err := cr.cfg.GetSection(profile)
	if err != nil {
		return nil, fmt.Errorf("profile %s not found", profile)
	}

	return &sdkconfig.Config{
		Profile: profile,
		Host:    section.Key("host").String(),
		Token:   section.Key("token").String(),
	}, nil
}

func defaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".databrickscfg"
	}
	return filepath.Join(home, ".databrickscfg")
}

// applyProfile fills host and token from the named profile. Values set
// explicitly in the config or environment win.
func (d *Databricks) applyProfile() error {
	if d.Profile == "" {
		return nil
	}
	path := d.ConfigFile
	if path == "" {
		path = defaultProfilePath()
	}

	registry, err := NewProfileRegistry(path)
	if err != nil {
		return err
	}
	profile, err := registry.GetConfig(d.Profile)
	if err != nil {
		return err
	}

	if d.Host == "" {
		d.Host = hostname(profile.Host)
	}
	if d.Token == "" {
		d.Token = profile.Token
	}
	return nil
}

// hostname strips the scheme and trailing slash that workspace URLs in
// .databrickscfg usually carry.
func hostname(host string) string {
	host = strings.TrimPrefix(host, "https://")
	host = strings.TrimPrefix(host, "http://")
	return strings.TrimSuffix(host, "/")
}
