// Package worker consumes delayed phase messages and advances event
// statuses when their start or end time arrives.
package worker

import (
	"context"
	"encoding/json"

	"github.com/wb-go/wbf/zlog"

	"planora/internal/cache"
	"planora/internal/dto"
	"planora/internal/rabbit"
	"planora/internal/repo"
)

// Invalidator drops cached views after a phase transition applies.
type Invalidator interface {
	Invalidate(ctx context.Context, entities ...cache.Entity)
}

type PhaseWorker struct {
	RMQ    *rabbit.Client
	repo   repo.Repository
	views  Invalidator
	done   chan struct{}
	cancel context.CancelFunc
}

func NewPhaseWorker(rmq *rabbit.Client, repo repo.Repository, views Invalidator) *PhaseWorker {
	return &PhaseWorker{
		RMQ:   rmq,
		repo:  repo,
		views: views,
		done:  make(chan struct{}),
	}
}

func (w *PhaseWorker) Start(ctx context.Context) {
	cctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	zlog.Logger.Info().Msg("event phase worker started")

	go func() {
		defer close(w.done)

		if err := w.RMQ.Consume(func(body []byte) error {
			return w.Handle(cctx, body)
		}); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to start consuming")
			return
		}

		<-cctx.Done()
		zlog.Logger.Info().Msg("event phase worker stopped by context")
	}()
}

// Handle applies one phase message. A message for an event that was
// deleted, suspended, or already past the phase is acknowledged without
// effect; rescheduled periods leave stale messages behind and this is
// where they die.
func (w *PhaseWorker) Handle(ctx context.Context, body []byte) error {
	var msg dto.EventPhaseMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		zlog.Logger.Error().Err(err).Msgf("failed to unmarshal phase message: %s", string(body))
		return err
	}

	zlog.Logger.Info().
		Int64("event_id", msg.EventID).
		Str("phase", msg.Phase).
		Msg("phase message received")

	status, changed, err := w.repo.AdvanceEventPhase(ctx, msg.EventID, msg.Phase)
	if err != nil {
		if err == repo.ErrEventNotFound {
			zlog.Logger.Info().Int64("event_id", msg.EventID).Msg("event gone, dropping phase message")
			return nil
		}
		zlog.Logger.Error().Err(err).Int64("event_id", msg.EventID).Msg("failed to advance event phase")
		return err
	}

	if !changed {
		zlog.Logger.Info().
			Int64("event_id", msg.EventID).
			Str("status", string(status)).
			Msg("phase message had no effect")
		return nil
	}

	w.views.Invalidate(ctx, cache.EntityEvent)
	zlog.Logger.Info().
		Int64("event_id", msg.EventID).
		Str("status", string(status)).
		Msg("event phase advanced")
	return nil
}

func (w *PhaseWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
		<-w.done
	}
}
