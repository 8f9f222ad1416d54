package github_test

import (
	"os"
	"strconv"
	"testing"

	"github.com/m-mizutani/gt"

	githubinfra "github.com/m-mizutani/cutter/pkg/infra/github"
)

func TestNewClient(t *testing.T) {
	client := githubinfra.NewClient("dummy-token")
	gt.Value(t, client).NotNil()
}

func TestNewAppClient(t *testing.T) {
	// App transport construction requires a parseable RSA key
	_, err := githubinfra.NewAppClient(12345, 67890, []byte("not a private key"))
	gt.Error(t, err)
}

func TestClient_WithRealAPI(t *testing.T) {
	// Integration test with real GitHub App credentials
	appID := os.Getenv("TEST_GITHUB_APP_ID")
	installationID := os.Getenv("TEST_GITHUB_INSTALLATION_ID")
	privateKey := os.Getenv("TEST_GITHUB_PRIVATE_KEY")

	if appID == "" || installationID == "" || privateKey == "" {
		t.Skip("Test GitHub App credentials not provided via environment variables")
	}

	appIDInt, err := strconv.ParseInt(appID, 10, 64)
	gt.NoError(t, err)

	installationIDInt, err := strconv.ParseInt(installationID, 10, 64)
	gt.NoError(t, err)

	client, err := githubinfra.NewAppClient(appIDInt, installationIDInt, []byte(privateKey))
	gt.NoError(t, err)
	gt.Value(t, client).NotNil()
}
