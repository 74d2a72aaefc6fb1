package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetScore(data.Score).
		SetMarksAwarded(data.MarksAwarded).
		SetMaxMarks(data.MaxMarks).
		SetCorrectAnswers(data.CorrectAnswers).
		SetIncorrectAnswers(data.IncorrectAnswers).
		SetUnanswered(data.Unanswered).
		SetTotalTimeSecs(data.TotalTimeSecs).
		SetStatus(data.Status).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}
