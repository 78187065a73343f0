package config

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"

	goconf "github.com/kayac/go-config"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/kayac/fcmsend/fcmv1"
)

// DefaultServiceAccountFile is consulted when neither a legacy API key
// nor an explicit credentials path is given.
const DefaultServiceAccountFile = "service-account.json"

// Config is the configure of an fcmsend invocation
type Config struct {
	FCM   SectionFCM   `toml:"fcm"`
	FCMv1 SectionFCMv1 `toml:"fcm_v1"`
}

// SectionFCM is the configuration of the legacy fcm API
type SectionFCM struct {
	APIKey  string `toml:"api_key"`
	Enabled bool
}

// SectionFCMv1 is the configuration of fcm/v1
type SectionFCMv1 struct {
	GoogleApplicationCredentials string `toml:"google_application_credentials"`
	Enabled                      bool
	ProjectID                    string
	TokenSource                  oauth2.TokenSource
}

// LoadConfig reads a TOML file and validates it.
func LoadConfig(fn string) (Config, error) {
	return Resolve(fn, "")
}

// Resolve builds the effective configuration for one invocation. A
// non-empty legacyKey enables the legacy API section; otherwise the
// service account file (DefaultServiceAccountFile unless configured)
// is loaded and exchanged for an OAuth2 token source. The service
// account file is never touched while a legacy key is present and no
// [fcm_v1] section is configured.
func Resolve(fn, legacyKey string) (Config, error) {
	var config Config

	if fn != "" {
		if err := goconf.LoadWithEnvTOML(&config, fn); err != nil {
			return config, err
		}
	}

	if legacyKey != "" {
		config.FCM.APIKey = legacyKey
	}
	if config.FCM.APIKey == "" && config.FCMv1.GoogleApplicationCredentials == "" {
		config.FCMv1.GoogleApplicationCredentials = DefaultServiceAccountFile
	}

	if err := (&config).validateConfig(); err != nil {
		return config, errors.Wrap(err, "validate config failed")
	}

	return config, nil
}

func (c *Config) validateConfig() error {
	if c.FCM.APIKey != "" {
		c.FCM.Enabled = true
	}
	if c.FCMv1.GoogleApplicationCredentials != "" {
		c.FCMv1.Enabled = true
		if err := c.validateConfigFCMv1(); err != nil {
			return errors.Wrap(err, "[fcm_v1]")
		}
	}
	if !c.FCM.Enabled && !c.FCMv1.Enabled {
		return fmt.Errorf("either [fcm] api_key or [fcm_v1] google_application_credentials is required")
	}
	return nil
}

func (c *Config) validateConfigFCMv1() error {
	b, err := ioutil.ReadFile(c.FCMv1.GoogleApplicationCredentials)
	if err != nil {
		return err
	}
	serviceAccount := make(map[string]string)
	if err := json.Unmarshal(b, &serviceAccount); err != nil {
		return err
	}
	if projectID := serviceAccount["project_id"]; projectID != "" {
		c.FCMv1.ProjectID = projectID
	} else {
		return fmt.Errorf("invalid service account json: %s project_id is not defined", c.FCMv1.GoogleApplicationCredentials)
	}

	conf, err := google.JWTConfigFromJSON(b, fcmv1.Scope)
	if err != nil {
		return err
	}
	c.FCMv1.TokenSource = conf.TokenSource(context.Background())

	return nil
}
