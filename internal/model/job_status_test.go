package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to JobStatus
		want     bool
	}{
		{StatusDraft, StatusScheduled, true},
		{StatusDraft, StatusCancelled, true},
		{StatusDraft, StatusInProgress, false},
		{StatusScheduled, StatusInProgress, true},
		{StatusScheduled, StatusOnHold, true},
		{StatusScheduled, StatusCompleted, false},
		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusScheduled, false},
		{StatusOnHold, StatusScheduled, true},
		{StatusOnHold, StatusInProgress, true},
		{StatusOnHold, StatusCompleted, false},
		{StatusCompleted, StatusInProgress, false},
		{StatusCancelled, StatusDraft, false},
		{StatusInProgress, StatusInProgress, true},
		{StatusCompleted, StatusCompleted, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTerminalStatusesHaveNoExits(t *testing.T) {
	for _, s := range []JobStatus{StatusCompleted, StatusCancelled} {
		assert.True(t, s.Terminal())
		assert.Empty(t, s.NextStatuses())
	}
	assert.False(t, StatusOnHold.Terminal())
}

func TestJobStatusValid(t *testing.T) {
	assert.True(t, StatusOnHold.Valid())
	assert.False(t, JobStatus("done").Valid())
	assert.False(t, JobStatus("").Valid())
}

func TestApplyStatusChange_InProgressSetsStartOnce(t *testing.T) {
	job := &Job{Status: StatusScheduled}
	first := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	changed := ApplyStatusChange(job, StatusChange{Status: StatusInProgress}, first)
	require.True(t, changed)
	require.NotNil(t, job.ActualStartTime)
	assert.Equal(t, first, *job.ActualStartTime)

	changed = ApplyStatusChange(job, StatusChange{Status: StatusInProgress}, first.Add(time.Hour))
	assert.False(t, changed)
	assert.Equal(t, first, *job.ActualStartTime)
}

func TestApplyStatusChange_ResumeKeepsOriginalStart(t *testing.T) {
	start := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	job := &Job{Status: StatusOnHold, ActualStartTime: &start}

	ApplyStatusChange(job, StatusChange{Status: StatusInProgress}, start.Add(3*time.Hour))
	assert.Equal(t, start, *job.ActualStartTime)
}

func TestApplyStatusChange_StartOverride(t *testing.T) {
	override := time.Date(2025, 6, 10, 7, 30, 0, 0, time.UTC)
	job := &Job{Status: StatusScheduled}

	ApplyStatusChange(job, StatusChange{Status: StatusInProgress, ActualStartTime: &override}, time.Now())
	assert.Equal(t, override, *job.ActualStartTime)
}

func TestApplyStatusChange_CompletedSetsEndAndNotes(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	notes := "mowed front and back"
	job := &Job{Status: StatusInProgress}

	ApplyStatusChange(job, StatusChange{Status: StatusCompleted, CompletionNotes: &notes}, now)
	require.NotNil(t, job.ActualEndTime)
	assert.Equal(t, now, *job.ActualEndTime)
	assert.Equal(t, notes, job.CompletionNotes)
	assert.Equal(t, StatusCompleted, job.Status)

	ApplyStatusChange(job, StatusChange{Status: StatusCompleted}, now.Add(time.Hour))
	assert.Equal(t, now, *job.ActualEndTime)
	assert.Equal(t, notes, job.CompletionNotes)
}

func TestApplyStatusChange_OtherStatusesLeaveTimestamps(t *testing.T) {
	job := &Job{Status: StatusDraft}
	ApplyStatusChange(job, StatusChange{Status: StatusScheduled}, time.Now())
	assert.Nil(t, job.ActualStartTime)
	assert.Nil(t, job.ActualEndTime)
	assert.Equal(t, StatusScheduled, job.Status)
}
