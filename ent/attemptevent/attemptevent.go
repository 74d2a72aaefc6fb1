// Code generated by ent, DO NOT EDIT.

package attemptevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the attemptevent type in the database.
	Label = "attempt_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAttemptID holds the string denoting the attempt_id field in the database.
	FieldAttemptID = "attempt_id"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldMarksAwarded holds the string denoting the marks_awarded field in the database.
	FieldMarksAwarded = "marks_awarded"
	// FieldMaxMarks holds the string denoting the max_marks field in the database.
	FieldMaxMarks = "max_marks"
	// FieldCorrectAnswers holds the string denoting the correct_answers field in the database.
	FieldCorrectAnswers = "correct_answers"
	// FieldIncorrectAnswers holds the string denoting the incorrect_answers field in the database.
	FieldIncorrectAnswers = "incorrect_answers"
	// FieldUnanswered holds the string denoting the unanswered field in the database.
	FieldUnanswered = "unanswered"
	// FieldTotalTimeSecs holds the string denoting the total_time_secs field in the database.
	FieldTotalTimeSecs = "total_time_secs"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// Table holds the table name of the attemptevent in the database.
	Table = "attempt_events"
)

// Columns holds all SQL columns for attemptevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldAttemptID,
	FieldScore,
	FieldMarksAwarded,
	FieldMaxMarks,
	FieldCorrectAnswers,
	FieldIncorrectAnswers,
	FieldUnanswered,
	FieldTotalTimeSecs,
	FieldStatus,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	AttemptIDValidator func(string) error
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
)

// OrderOption defines the ordering options for the AttemptEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByAttemptID orders the results by the attempt_id field.
func ByAttemptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptID, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByMarksAwarded orders the results by the marks_awarded field.
func ByMarksAwarded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarksAwarded, opts...).ToFunc()
}

// ByMaxMarks orders the results by the max_marks field.
func ByMaxMarks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxMarks, opts...).ToFunc()
}

// ByCorrectAnswers orders the results by the correct_answers field.
func ByCorrectAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswers, opts...).ToFunc()
}

// ByIncorrectAnswers orders the results by the incorrect_answers field.
func ByIncorrectAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncorrectAnswers, opts...).ToFunc()
}

// ByUnanswered orders the results by the unanswered field.
func ByUnanswered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnanswered, opts...).ToFunc()
}

// ByTotalTimeSecs orders the results by the total_time_secs field.
func ByTotalTimeSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTimeSecs, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}
