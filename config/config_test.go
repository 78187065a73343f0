package config

import (
	"os"
	"testing"
)

func TestResolveLegacyKey(t *testing.T) {
	// no service-account.json exists in the working directory, so this
	// also proves the file is not touched in legacy mode
	c, err := Resolve("", "ABC123")
	if err != nil {
		t.Fatal(err)
	}

	if !c.FCM.Enabled {
		t.Error("[fcm] should be enabled")
	}
	if g, w := c.FCM.APIKey, "ABC123"; g != w {
		t.Errorf("not match api key: got %s want %s", g, w)
	}
	if c.FCMv1.Enabled {
		t.Error("[fcm_v1] should not be enabled when a legacy key is given")
	}
}

func TestResolveServiceAccount(t *testing.T) {
	c, err := Resolve("testdata/fcmsend_v1.toml", "")
	if err != nil {
		t.Fatal(err)
	}

	if c.FCM.Enabled {
		t.Error("[fcm] should not be enabled")
	}
	if !c.FCMv1.Enabled {
		t.Error("[fcm_v1] should be enabled")
	}
	if g, w := c.FCMv1.ProjectID, "sample-project"; g != w {
		t.Errorf("not match project id: got %s want %s", g, w)
	}
	if c.FCMv1.TokenSource == nil {
		t.Error("token source should be built")
	}
}

func TestLoadTomlConfigFileWithEnv(t *testing.T) {
	if err := os.Setenv("TEST_FCMSEND_API_KEY", "env-api-key"); err != nil {
		t.Error(err)
	}

	c, err := LoadConfig("testdata/fcmsend_legacy.toml")
	if err != nil {
		t.Fatal(err)
	}

	if g, w := c.FCM.APIKey, "env-api-key"; g != w {
		t.Errorf("not match api key: got %s want %s", g, w)
	}
}

func TestResolveMissingServiceAccount(t *testing.T) {
	if _, err := Resolve("", ""); err == nil {
		t.Error("a missing service account file should fail")
	}
}

func TestResolveServiceAccountWithoutProjectID(t *testing.T) {
	c := Config{}
	c.FCMv1.GoogleApplicationCredentials = "testdata/no-project-id.json"
	if err := (&c).validateConfig(); err == nil {
		t.Error("a service account without project_id should fail")
	}
}
