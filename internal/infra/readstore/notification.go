package readstore

import (
	"context"

	"brainbox-retailplus/internal/infra"
	sqlc "brainbox-retailplus/internal/infra/sqlc/generated"
	"brainbox-retailplus/internal/usecase/queries"
)

type NotificationReadQueries interface {
	GetNotificationJobsByTopic(ctx context.Context, db sqlc.DBTX, arg sqlc.GetNotificationJobsByTopicParams) ([]sqlc.NotificationJobs, error)
}

type NotificationReadStore struct {
	queries NotificationReadQueries
	db      sqlc.DBTX
}

func NewNotificationReadStore(queries NotificationReadQueries, db sqlc.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

// ListByTopic returns the newest jobs for a topic, whatever their status.
func (s *NotificationReadStore) ListByTopic(ctx context.Context, topic string, limit int32) ([]*queries.NotificationJobView, error) {
	rows, err := s.queries.GetNotificationJobsByTopic(ctx, s.db, sqlc.GetNotificationJobsByTopicParams{
		Topic: topic,
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notification jobs", err)
	}

	result := make([]*queries.NotificationJobView, len(rows))
	for i, row := range rows {
		result[i] = toNotificationJobViewFromRow(row)
	}

	return result, nil
}

func toNotificationJobViewFromRow(row sqlc.NotificationJobs) *queries.NotificationJobView {
	view := &queries.NotificationJobView{
		ID:        row.ID,
		Kind:      row.Kind,
		Topic:     row.Topic,
		Payload:   row.Payload,
		RunAt:     row.RunAt.Time,
		Attempts:  row.Attempts,
		Status:    row.Status,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}

	if row.LastError.Valid {
		view.LastError = &row.LastError.String
	}

	return view
}
