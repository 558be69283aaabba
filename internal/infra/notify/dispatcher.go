package notify

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"brainbox-retailplus/internal/pkg/clock"
	"brainbox-retailplus/internal/pkg/config"
	"brainbox-retailplus/internal/pkg/errs"
	"brainbox-retailplus/internal/usecase/shared"
)

var ErrUnknownTopic = errs.New("unknown notification topic")

// NewChannels builds every supported channel from config. Which of them receive
// jobs is decided when jobs are enqueued.
func NewChannels(client *http.Client, cfg config.Config) []Channel {
	return []Channel{
		NewLogChannel(),
		NewEmailChannel(client, cfg.Resend, cfg.Notifier.OwnerEmail),
		NewSMSChannel(client, cfg.Twilio, cfg.Notifier.OwnerPhone),
		NewWhatsAppChannel(client, cfg.Twilio, cfg.Notifier.OwnerWhatsApp),
	}
}

// Dispatcher drains queued outbox jobs. Each job gets exactly one delivery
// attempt: queued, then sending once claimed, then sent or failed.
type Dispatcher struct {
	uow          shared.UnitOfWork
	clock        clock.Clock
	channels     map[string]Channel
	pollInterval time.Duration
	batchSize    int32
	sendTimeout  time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewDispatcher(uow shared.UnitOfWork, clk clock.Clock, cfg config.NotifierConfig, channels []Channel) *Dispatcher {
	byName := make(map[string]Channel, len(channels))
	for _, ch := range channels {
		byName[ch.Name()] = ch
	}
	return &Dispatcher{
		uow:          uow,
		clock:        clk,
		channels:     byName,
		pollInterval: cfg.PollInterval,
		batchSize:    cfg.BatchSize,
		sendTimeout:  cfg.SendTimeout,
	}
}

// Start launches the poll loop. The loop outlives ctx, which only bounds startup.
func (d *Dispatcher) Start(_ context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cancel != nil {
		return nil
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.done = make(chan struct{})

	slog.Info("notification dispatcher started",
		"poll_interval", d.pollInterval.String(),
		"batch_size", d.batchSize)

	go d.loop(loopCtx, d.done)
	return nil
}

func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	cancel, done := d.cancel, d.done
	d.cancel, d.done = nil, nil
	d.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		slog.Info("notification dispatcher stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := d.RunOnce(ctx); err != nil && ctx.Err() == nil {
				slog.Error("notification poll failed", "error", err.Error())
			}
		}
	}
}

// RunOnce claims one batch of due jobs, delivers them and records the outcome.
// Claiming commits before any provider is called, so a job is attempted at most
// once even if recording its outcome fails. It returns how many jobs were attempted.
func (d *Dispatcher) RunOnce(ctx context.Context) (int, error) {
	var jobs []shared.NotificationJob
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claimed, err := tx.Notifications().ClaimDue(ctx, tx.DB(), d.clock.Now(), d.batchSize)
		if err != nil {
			return err
		}
		jobs = claimed
		return nil
	})
	if err != nil {
		return 0, errs.Wrap(err, "claim notifications")
	}

	var recordErr error
	for _, job := range jobs {
		status, lastError := d.deliver(ctx, job)
		if err := d.record(ctx, job, status, lastError); err != nil {
			slog.Error("notification outcome not recorded",
				"job_id", job.ID,
				"channel", job.Kind,
				"status", status,
				"error", err.Error())
			if recordErr == nil {
				recordErr = err
			}
		}
	}
	if recordErr != nil {
		return len(jobs), errs.Wrap(recordErr, "record notification outcome")
	}
	return len(jobs), nil
}

// record stores one job's outcome in its own transaction.
func (d *Dispatcher) record(ctx context.Context, job shared.NotificationJob, status string, lastError *string) error {
	return d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().UpdateJobStatus(ctx, tx.DB(), job.ID, status, lastError)
	})
}

// deliver never returns an error to the caller; failures are recorded on the job.
func (d *Dispatcher) deliver(ctx context.Context, job shared.NotificationJob) (string, *string) {
	err := d.send(ctx, job)
	if err == nil {
		slog.Info("notification sent", "job_id", job.ID, "channel", job.Kind, "topic", job.Topic)
		return shared.NotificationStatusSent, nil
	}

	msg := err.Error()
	slog.Warn("notification failed",
		"job_id", job.ID,
		"channel", job.Kind,
		"topic", job.Topic,
		"error", msg)
	return shared.NotificationStatusFailed, &msg
}

func (d *Dispatcher) send(ctx context.Context, job shared.NotificationJob) error {
	channel, ok := d.channels[job.Kind]
	if !ok {
		return errs.Wrap(ErrUnknownChannel, job.Kind)
	}

	var (
		msg Message
		err error
	)
	switch job.Topic {
	case shared.TopicRewardCompleted:
		msg, err = RenderRewardCompleted(job.Payload)
	default:
		err = errs.Wrap(ErrUnknownTopic, job.Topic)
	}
	if err != nil {
		return err
	}

	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()
	return channel.Send(sendCtx, msg)
}
