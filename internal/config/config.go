// Package config builds the application configuration once at startup
// from environment variables. Components receive it by parameter; nothing
// reads the environment after Load returns.
package config

import (
	"fmt"
	"os"

	"github.com/autoluxe/autoluxe-migrate/pkg/database"
)

type Value struct {
	envVarName   string
	defaultValue string
	Value        string
}

// Config enumerates every variable the migration jobs use. Which ones are
// actually required depends on the command being run, so Load never fails
// on a missing value; the Require* methods do, at client-construction time.
type Config struct {
	DatabaseURL               Value
	FirebaseServiceAccountKey Value
	FirebaseProjectID         Value
	FirebaseStorageBucket     Value
	SupabaseStorageURL        Value
	SupabaseServiceRoleKey    Value
	AlgoliaAppID              Value
	AlgoliaAdminKey           Value
	AlgoliaIndexName          Value
	Environment               Value
	SeqURL                    Value
	SeqToken                  Value
	LedgerDir                 Value
}

func Load() *Config {
	cfg := &Config{
		DatabaseURL:               Value{envVarName: "DATABASE_URL"},
		FirebaseServiceAccountKey: Value{envVarName: "FIREBASE_SERVICE_ACCOUNT_KEY"},
		FirebaseProjectID:         Value{envVarName: "FIREBASE_PROJECT_ID"},
		FirebaseStorageBucket:     Value{envVarName: "FIREBASE_STORAGE_BUCKET"},
		SupabaseStorageURL:        Value{envVarName: "SUPABASE_STORAGE_URL"},
		SupabaseServiceRoleKey:    Value{envVarName: "SUPABASE_SERVICE_ROLE_KEY"},
		AlgoliaAppID:              Value{envVarName: "ALGOLIA_APP_ID"},
		AlgoliaAdminKey:           Value{envVarName: "ALGOLIA_ADMIN_KEY"},
		AlgoliaIndexName:          Value{envVarName: "ALGOLIA_INDEX_NAME", defaultValue: "autoluxe-dxb"},
		Environment:               Value{envVarName: "ENVIRONMENT", defaultValue: "development"},
		SeqURL:                    Value{envVarName: "SEQ_URL"},
		SeqToken:                  Value{envVarName: "SEQ_TOKEN"},
		LedgerDir:                 Value{envVarName: "LEDGER_DIR", defaultValue: "."},
	}

	populate(&cfg.DatabaseURL)
	populate(&cfg.FirebaseServiceAccountKey)
	populate(&cfg.FirebaseProjectID)
	populate(&cfg.FirebaseStorageBucket)
	populate(&cfg.SupabaseStorageURL)
	populate(&cfg.SupabaseServiceRoleKey)
	populate(&cfg.AlgoliaAppID)
	populate(&cfg.AlgoliaAdminKey)
	populate(&cfg.AlgoliaIndexName)
	populate(&cfg.Environment)
	populate(&cfg.SeqURL)
	populate(&cfg.SeqToken)
	populate(&cfg.LedgerDir)

	return cfg
}

func populate(v *Value) {
	s := os.Getenv(v.envVarName)
	if s == "" {
		s = v.defaultValue
	}
	v.Value = s
}

func requireSet(vals ...Value) error {
	for _, v := range vals {
		if v.Value == "" {
			return fmt.Errorf("environment variable %s is not set", v.envVarName)
		}
	}
	return nil
}

// RequireMigration covers the entity migrations and the precheck.
func (c *Config) RequireMigration() error {
	return requireSet(c.DatabaseURL, c.FirebaseServiceAccountKey, c.FirebaseProjectID)
}

// RequireIndexSync covers the search index sync job.
func (c *Config) RequireIndexSync() error {
	return requireSet(c.DatabaseURL, c.AlgoliaAppID, c.AlgoliaAdminKey)
}

// RequireAssetExport covers the legacy bucket download phase.
func (c *Config) RequireAssetExport() error {
	return requireSet(c.FirebaseServiceAccountKey, c.FirebaseStorageBucket)
}

// RequireAssetUpload covers the new-provider upload phase.
func (c *Config) RequireAssetUpload() error {
	return requireSet(c.SupabaseStorageURL, c.SupabaseServiceRoleKey)
}

// ServiceAccountJSON decodes the base64-encoded legacy credential.
func (c *Config) ServiceAccountJSON() ([]byte, error) {
	if err := requireSet(c.FirebaseServiceAccountKey); err != nil {
		return nil, err
	}
	return database.DecodeServiceAccount(c.FirebaseServiceAccountKey.Value)
}
