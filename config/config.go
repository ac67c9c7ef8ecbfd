package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Configuration holds the directory connection settings and the optional
// audit database DSN, loaded from an env file.
type Configuration struct {
	BaseDN     string
	DcFQDN     string
	Username   string
	Password   string
	AuditDbDSN string
}

// LoadEnvConfig reads the named env file and validates the required
// connection settings.
func LoadEnvConfig(configName string) (Configuration, error) {
	if err := godotenv.Load(configName); err != nil {
		return Configuration{}, fmt.Errorf("error loading env file %s: %w", configName, err)
	}

	cfg := Configuration{
		BaseDN:     os.Getenv("LDAP_BASEDN"),
		DcFQDN:     os.Getenv("LDAP_DCFQDN"),
		Username:   os.Getenv("LDAP_USERNAME"),
		Password:   os.Getenv("LDAP_PASSWORD"),
		AuditDbDSN: os.Getenv("AUDIT_DB_DSN"),
	}

	for name, value := range map[string]string{
		"LDAP_BASEDN":   cfg.BaseDN,
		"LDAP_DCFQDN":   cfg.DcFQDN,
		"LDAP_USERNAME": cfg.Username,
		"LDAP_PASSWORD": cfg.Password,
	} {
		if value == "" {
			return Configuration{}, fmt.Errorf("%s is not set in %s", name, configName)
		}
	}

	return cfg, nil
}
