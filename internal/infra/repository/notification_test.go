//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"brainbox-retailplus/internal/infra"
	"brainbox-retailplus/internal/infra/repository"
	sqlc "brainbox-retailplus/internal/infra/sqlc/generated"
	"brainbox-retailplus/internal/usecase/shared"
	repositorymock "brainbox-retailplus/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationRepository_CreateJob(t *testing.T) {
	ctx := context.Background()
	runAt := time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewNotificationRepository(mockQueries, mockDB)

	mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, sqlc.CreateNotificationJobParams{
		Kind:    "email",
		Topic:   shared.TopicRewardCompleted,
		Payload: []byte(`{"slip":"RW-20260314-ABCDEF"}`),
		RunAt:   pgtype.Timestamptz{Time: runAt, Valid: true},
		Status:  shared.NotificationStatusQueued,
	}).Return(nil)

	err := repo.CreateJob(ctx, mockDB, "email", shared.TopicRewardCompleted, []byte(`{"slip":"RW-20260314-ABCDEF"}`), runAt)
	require.NoError(t, err)
}

func TestNotificationRepository_ClaimDue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC)

	t.Run("success: rows mapped to jobs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries, mockDB)

		jobID := uuid.New()
		mockQueries.EXPECT().ClaimDueNotificationJobs(ctx, mockDB, sqlc.ClaimDueNotificationJobsParams{
			Now:       pgtype.Timestamptz{Time: now, Valid: true},
			BatchSize: 5,
		}).Return([]sqlc.NotificationJobs{{
			ID:      jobID,
			Kind:    "sms",
			Topic:   shared.TopicRewardCompleted,
			Payload: []byte(`{}`),
			RunAt:   pgtype.Timestamptz{Time: now, Valid: true},
		}}, nil)

		jobs, err := repo.ClaimDue(ctx, mockDB, now, 5)

		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, jobID, jobs[0].ID)
		assert.Equal(t, "sms", jobs[0].Kind)
		assert.Equal(t, now, jobs[0].RunAt)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries, mockDB)

		mockQueries.EXPECT().ClaimDueNotificationJobs(ctx, mockDB, gomock.Any()).Return(nil, errors.New("connection refused"))

		jobs, err := repo.ClaimDue(ctx, mockDB, now, 5)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, jobs)
	})
}

func TestNotificationRepository_UpdateJobStatus(t *testing.T) {
	ctx := context.Background()
	jobID := uuid.New()
	lastError := "twilio: 401 unauthorized"

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewNotificationRepository(mockQueries, mockDB)

	mockQueries.EXPECT().UpdateNotificationJobStatus(ctx, mockDB, sqlc.UpdateNotificationJobStatusParams{
		ID:        jobID,
		Status:    shared.NotificationStatusFailed,
		LastError: pgtype.Text{String: lastError, Valid: true},
	}).Return(nil)

	require.NoError(t, repo.UpdateJobStatus(ctx, mockDB, jobID, shared.NotificationStatusFailed, &lastError))
}
