package store

import (
	"context"
	"fmt"

	"github.com/prepdeck/prepdeck/ent"
	"github.com/prepdeck/prepdeck/ent/genrequestevent"
)

func (r *eventRepo) AppendGenRequest(ctx context.Context, data GenRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.GenRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetItemsGenerated(data.ItemsGenerated).
		SetFallbackUsed(data.FallbackUsed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save gen request event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentGenRequests(ctx context.Context, limit int) ([]GenRequest, error) {
	q := r.client.GenRequestEvent.Query().
		Order(ent.Desc(genrequestevent.FieldTimestamp), ent.Desc(genrequestevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query gen request events: %w", err)
	}

	out := make([]GenRequest, 0, len(events))
	for _, e := range events {
		out = append(out, GenRequest{
			ID:             e.ID,
			Timestamp:      e.Timestamp,
			Provider:       e.Provider,
			Model:          e.Model,
			Purpose:        e.Purpose,
			InputTokens:    e.InputTokens,
			OutputTokens:   e.OutputTokens,
			LatencyMs:      e.LatencyMs,
			Success:        e.Success,
			ErrorMessage:   e.ErrorMessage,
			ItemsGenerated: e.ItemsGenerated,
			FallbackUsed:   e.FallbackUsed,
		})
	}
	return out, nil
}

func (r *eventRepo) GenUsageByModel(ctx context.Context) ([]GenUsage, error) {
	var rows []struct {
		Model        string  `json:"model"`
		Calls        int     `json:"calls"`
		InputTokens  int     `json:"input_tokens"`
		OutputTokens int     `json:"output_tokens"`
		AvgLatencyMs float64 `json:"avg_latency_ms"`
	}

	// Fallback degradations carry no tokens and no price; cost accounting
	// covers real provider calls only.
	err := r.client.GenRequestEvent.Query().
		Where(genrequestevent.FallbackUsed(false)).
		GroupBy(genrequestevent.FieldModel).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(genrequestevent.FieldInputTokens), "input_tokens"),
			ent.As(ent.Sum(genrequestevent.FieldOutputTokens), "output_tokens"),
			ent.As(ent.Mean(genrequestevent.FieldLatencyMs), "avg_latency_ms"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate gen usage: %w", err)
	}

	out := make([]GenUsage, 0, len(rows))
	for _, row := range rows {
		out = append(out, GenUsage{
			Model:        row.Model,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			AvgLatencyMs: row.AvgLatencyMs,
		})
	}
	return out, nil
}
