package store

import (
	"context"
	"fmt"
	"time"

	"github.com/prepdeck/prepdeck/ent"
	"github.com/prepdeck/prepdeck/ent/answerevent"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetItemID(data.ItemID).
		SetTopic(data.Topic).
		SetQuestionType(data.QuestionType).
		SetDifficulty(data.Difficulty).
		SetAnswered(data.Answered).
		SetAwarded(data.Awarded).
		SetTimeSecs(data.TimeSecs).
		SetNillableCorrect(data.Correct)

	if data.Subtopic != "" {
		builder = builder.SetSubtopic(data.Subtopic)
	}
	if data.Subject != "" {
		builder = builder.SetSubject(data.Subject)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AnswerOutcomes(ctx context.Context, from, to time.Time) ([]AnswerOutcome, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(
			answerevent.TimestampGTE(from),
			answerevent.TimestampLTE(to),
		).
		Order(ent.Asc(answerevent.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer outcomes: %w", err)
	}
	return entAnswerOutcomes(events), nil
}

func (r *eventRepo) RecentTopicOutcomes(ctx context.Context, topic string, lastN int, since time.Time) ([]AnswerOutcome, error) {
	q := r.client.AnswerEvent.Query().
		Where(
			answerevent.Topic(topic),
			answerevent.TimestampGTE(since),
		).
		Order(ent.Desc(answerevent.FieldTimestamp))
	if lastN > 0 {
		q = q.Limit(lastN)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query topic outcomes: %w", err)
	}

	// Newest-first from the query; callers expect oldest-first.
	out := entAnswerOutcomes(events)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func entAnswerOutcomes(events []*ent.AnswerEvent) []AnswerOutcome {
	out := make([]AnswerOutcome, len(events))
	for i, e := range events {
		out[i] = AnswerOutcome{
			AttemptID: e.AttemptID,
			ItemID:    e.ItemID,
			Topic:     e.Topic,
			Subtopic:  e.Subtopic,
			Subject:   e.Subject,
			Correct:   e.Correct,
			Answered:  e.Answered,
			At:        e.Timestamp,
		}
	}
	return out
}
