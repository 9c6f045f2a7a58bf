package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
)

// Environment variables that point integration tests at real cloud resources
const (
	EnvFirestoreProjectID  = "MONOCONF_TEST_FIRESTORE_PROJECT_ID"
	EnvFirestoreDatabaseID = "MONOCONF_TEST_FIRESTORE_DATABASE_ID"
	EnvGCSBucket           = "MONOCONF_TEST_GCS_BUCKET"
	EnvGCSObject           = "MONOCONF_TEST_GCS_OBJECT"
)

// GetEnvOrSkip returns the value of the environment variable. If not set, skip the test.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s is not set, skipping test", key)
	}
	return value
}

// FirestoreTarget returns the database holding config documents for integration tests
func FirestoreTarget(t *testing.T) (projectID, databaseID string) {
	t.Helper()
	return GetEnvOrSkip(t, EnvFirestoreProjectID), GetEnvOrSkip(t, EnvFirestoreDatabaseID)
}

// GCSObject returns an existing, non-empty config object for integration tests
func GCSObject(t *testing.T) (bucket, object string) {
	t.Helper()
	return GetEnvOrSkip(t, EnvGCSBucket), GetEnvOrSkip(t, EnvGCSObject)
}

// WriteFile writes data to name in a fresh temp dir and returns the path
func WriteFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	gt.NoError(t, os.WriteFile(path, data, 0600))
	return path
}
