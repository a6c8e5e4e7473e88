// Package auth stores Polaris API credentials in the system keyring, with
// environment variable fallbacks for CI and other non-interactive use.
package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/99designs/keyring"

	clierrors "github.com/salmonumbrella/polaris-cli/internal/errors"
)

const (
	// ServiceName is the keyring service name for polaris-cli.
	ServiceName = "polaris-cli"
	// EnvClientID is the environment fallback for the OAuth client ID.
	EnvClientID = "POLARIS_CLIENT_ID"
	// EnvClientSecret is the environment fallback for the OAuth secret.
	EnvClientSecret = "POLARIS_CLIENT_SECRET"
	// EnvCredentialsDir overrides the file-backend storage root.
	EnvCredentialsDir = "POLARIS_CREDENTIALS_DIR"
	// EnvKeyringPassword sets the file keyring passphrase for headless
	// setups.
	EnvKeyringPassword = "POLARIS_KEYRING_PASSWORD"
)

// Credentials are the OAuth client credentials for one organization.
type Credentials struct {
	ClientID     string    `json:"client_id"`
	ClientSecret string    `json:"client_secret"`
	CreatedAt    time.Time `json:"created_at"`
}

// KeyringProvider is the subset of keyring operations used here, split out
// so tests can substitute an in-memory implementation.
type KeyringProvider interface {
	Get(key string) (keyring.Item, error)
	Set(item keyring.Item) error
	Remove(key string) error
}

// openKeyringFunc creates the keyring; overridable for tests.
var openKeyringFunc = openKeyring

// SetOpenKeyringFunc replaces the keyring opener for testing and returns
// the original.
func SetOpenKeyringFunc(fn func() (KeyringProvider, error)) func() (KeyringProvider, error) {
	orig := openKeyringFunc
	openKeyringFunc = fn
	return orig
}

func openKeyring() (KeyringProvider, error) {
	cfg := keyring.Config{
		ServiceName:              ServiceName,
		KeychainTrustApplication: true,
		FilePasswordFunc:         filePassword,
	}
	if dir := os.Getenv(EnvCredentialsDir); dir != "" {
		cfg.FileDir = filepath.Join(dir, ServiceName, "keyring")
		cfg.AllowedBackends = []keyring.BackendType{keyring.FileBackend}
	}
	return keyring.Open(cfg)
}

func filePassword(prompt string) (string, error) {
	if pw := os.Getenv(EnvKeyringPassword); pw != "" {
		return pw, nil
	}
	return "", fmt.Errorf("set %s to use the file keyring non-interactively", EnvKeyringPassword)
}

func credentialsKey(org string) string {
	return "polaris-credentials-" + org
}

// SetCredentials stores credentials for an organization.
func SetCredentials(org string, creds Credentials) error {
	if creds.CreatedAt.IsZero() {
		creds.CreatedAt = time.Now().UTC()
	}
	data, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	ring, err := openKeyringFunc()
	if err != nil {
		return fmt.Errorf("failed to open keyring: %w", err)
	}
	return ring.Set(keyring.Item{
		Key:   credentialsKey(org),
		Data:  data,
		Label: fmt.Sprintf("Polaris API credentials (%s)", org),
	})
}

// GetCredentials retrieves stored credentials for an organization.
func GetCredentials(org string) (Credentials, error) {
	ring, err := openKeyringFunc()
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to open keyring: %w", err)
	}
	item, err := ring.Get(credentialsKey(org))
	if err != nil {
		return Credentials{}, err
	}
	var creds Credentials
	if err := json.Unmarshal(item.Data, &creds); err != nil {
		return Credentials{}, fmt.Errorf("corrupt credentials entry: %w", err)
	}
	return creds, nil
}

// DeleteCredentials removes stored credentials for an organization.
func DeleteCredentials(org string) error {
	ring, err := openKeyringFunc()
	if err != nil {
		return fmt.Errorf("failed to open keyring: %w", err)
	}
	return ring.Remove(credentialsKey(org))
}

// ResolveCredentials returns the credentials to use for an organization:
// environment variables win over the keyring. cfgClientID, when set,
// supplies the client ID for an env-provided secret.
func ResolveCredentials(org, cfgClientID string) (Credentials, error) {
	envID := os.Getenv(EnvClientID)
	envSecret := os.Getenv(EnvClientSecret)
	if envSecret != "" {
		id := envID
		if id == "" {
			id = cfgClientID
		}
		if id == "" {
			return Credentials{}, clierrors.AuthRequiredError(
				fmt.Errorf("%s is set but no client ID found (set %s or config client_id)",
					EnvClientSecret, EnvClientID))
		}
		return Credentials{ClientID: id, ClientSecret: envSecret}, nil
	}

	creds, err := GetCredentials(org)
	if err != nil {
		return Credentials{}, clierrors.AuthRequiredError(err)
	}
	return creds, nil
}
