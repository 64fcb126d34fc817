package summary

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/imamik/oneliner/internal/provisioning"
	"github.com/imamik/oneliner/internal/util/prerequisites"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{30 * time.Second, "30s"},
		{90 * time.Second, "1m30s"},
		{3600 * time.Second, "1h0m"},
		{3661 * time.Second, "1h1m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.d), "formatDuration(%v)", tt.d)
	}
}

func TestRender_Success(t *testing.T) {
	out := Render(Report{
		RunID:    "run-1",
		Region:   "us-east-1",
		Duration: 95 * time.Second,
		Entries: []provisioning.Entry{
			{Key: provisioning.KeyVPCID, Values: []string{"vpc-1"}},
			{Key: provisioning.KeySubnetIDs, Values: []string{"subnet-1", "subnet-2"}},
		},
	}, false)

	assert.Contains(t, out, "oneliner run completed")
	assert.Contains(t, out, "run run-1 | region us-east-1 | took 1m35s")
	assert.Contains(t, out, "[OK] vpc_id     vpc-1")
	assert.Contains(t, out, "[OK] subnet_ids subnet-1, subnet-2")
	assert.NotContains(t, out, "Error")
	assert.NotContains(t, out, "\x1b[", "plain output has no escape codes")
}

func TestRender_Failure(t *testing.T) {
	out := Render(Report{
		Entries:     []provisioning.Entry{{Key: provisioning.KeyVPCID, Values: []string{"vpc-1"}}},
		FailedPhase: "subnets",
		Err:         errors.New("failed to create subnet: boom"),
	}, false)

	assert.Contains(t, out, "oneliner run failed")
	assert.Contains(t, out, "[!!] subnets: failed to create subnet: boom")
	assert.Contains(t, out, "were not removed")
}

func TestRender_NothingCreated(t *testing.T) {
	out := Render(Report{Err: errors.New("no credentials")}, false)

	assert.Contains(t, out, "none created")
	assert.Contains(t, out, "[!!] setup: no credentials")
}

func TestRender_MissingTools(t *testing.T) {
	out := Render(Report{
		Missing: []prerequisites.Tool{{
			Name:        "ansible-playbook",
			Description: "Deploys the sample application",
			InstallURL:  "https://docs.ansible.com",
		}},
	}, false)

	assert.Contains(t, out, "Missing tools")
	assert.Contains(t, out, "[??] ansible-playbook: Deploys the sample application")
	assert.Contains(t, out, "https://docs.ansible.com")
}

func TestRender_StyledKeepsContent(t *testing.T) {
	out := Render(Report{
		Entries: []provisioning.Entry{{Key: provisioning.KeyInstanceID, Values: []string{"i-1"}}},
	}, true)

	assert.True(t, strings.Contains(out, "instance_id"))
	assert.Contains(t, out, "i-1")
}
