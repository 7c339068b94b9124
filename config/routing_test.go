package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoutingOverrides(t *testing.T) {
	environ := []string{
		"PATH=/usr/bin",
		"REPO_org_repo_CHAT_ID=-200",
		"REPO_my_org_my_repo_CHAT_ID=-300",
		"TELEGRAM_DEFAULT_CHAT_ID=-100",
		"WEBHOOK_SECRET=s3cret",
	}

	overrides := routingOverrides(environ)
	require.Equal(t, map[string]string{
		"org_repo":       "-200",
		"my_org_my_repo": "-300",
	}, overrides)
}

func TestRoutingOverridesIgnoresDegenerate(t *testing.T) {
	environ := []string{
		"REPO_CHAT_ID=-1",
		"REPO__CHAT_ID=-2",
		"REPO_org_repo_CHAT_ID=",
		"REPO_org_repo=-3",
		"org_repo_CHAT_ID=-4",
		"NOTREPO_org_repo_CHAT_ID=-5",
	}

	require.Empty(t, routingOverrides(environ))
}

func TestRoutingOverridesValueWithEquals(t *testing.T) {
	overrides := routingOverrides([]string{"REPO_org_repo_CHAT_ID=a=b"})

	require.Equal(t, map[string]string{"org_repo": "a=b"}, overrides)
}
