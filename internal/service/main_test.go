package service_test

import (
	"os"
	"testing"

	"agenthub-backend/internal/testutils"
)

// TestMain makes sure the shared DynamoDB Local container is purged when the
// package's tests finish.
func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
