package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateActivityRequest_Validate(t *testing.T) {
	valid := CreateActivityRequest{
		CustomerID:  "c-1",
		Kind:        ActivityKindRepair,
		ScheduledAt: time.Now(),
	}
	require.NoError(t, valid.Validate())

	missingCustomer := valid
	missingCustomer.CustomerID = " "
	assert.Error(t, missingCustomer.Validate())

	badKind := valid
	badKind.Kind = "cleaning"
	assert.Error(t, badKind.Validate())

	noSchedule := valid
	noSchedule.ScheduledAt = time.Time{}
	assert.Error(t, noSchedule.Validate())
}

func TestParseActivityStatus(t *testing.T) {
	status, ok := ParseActivityStatus(" In_Progress ")
	require.True(t, ok)
	assert.Equal(t, ActivityStatusInProgress, status)

	_, ok = ParseActivityStatus("done")
	assert.False(t, ok)
}

func TestUpdateActivityRequest_Validate(t *testing.T) {
	bad := ActivityStatus("done")
	req := UpdateActivityRequest{Status: &bad}
	assert.Error(t, req.Validate())

	closed := ActivityStatusClosed
	req = UpdateActivityRequest{Status: &closed}
	assert.NoError(t, req.Validate())
}
