package tests

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	_ = os.Setenv("GITHUB_TOKEN", "integration-token")
	os.Exit(m.Run())
}
