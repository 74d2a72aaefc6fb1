// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/prepdeck/prepdeck/ent/answerevent"
	"github.com/prepdeck/prepdeck/ent/attemptevent"
	"github.com/prepdeck/prepdeck/ent/genrequestevent"
	"github.com/prepdeck/prepdeck/ent/reviewevent"
	"github.com/prepdeck/prepdeck/ent/schema"
	"github.com/prepdeck/prepdeck/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescAttemptID is the schema descriptor for attempt_id field.
	answereventDescAttemptID := answereventFields[0].Descriptor()
	// answerevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	answerevent.AttemptIDValidator = answereventDescAttemptID.Validators[0].(func(string) error)
	// answereventDescItemID is the schema descriptor for item_id field.
	answereventDescItemID := answereventFields[1].Descriptor()
	// answerevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	answerevent.ItemIDValidator = answereventDescItemID.Validators[0].(func(string) error)
	// answereventDescTopic is the schema descriptor for topic field.
	answereventDescTopic := answereventFields[2].Descriptor()
	// answerevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	answerevent.TopicValidator = answereventDescTopic.Validators[0].(func(string) error)
	// answereventDescQuestionType is the schema descriptor for question_type field.
	answereventDescQuestionType := answereventFields[5].Descriptor()
	// answerevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	answerevent.QuestionTypeValidator = answereventDescQuestionType.Validators[0].(func(string) error)
	// answereventDescDifficulty is the schema descriptor for difficulty field.
	answereventDescDifficulty := answereventFields[6].Descriptor()
	// answerevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	answerevent.DifficultyValidator = answereventDescDifficulty.Validators[0].(func(string) error)
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescAttemptID is the schema descriptor for attempt_id field.
	attempteventDescAttemptID := attempteventFields[0].Descriptor()
	// attemptevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attemptevent.AttemptIDValidator = attempteventDescAttemptID.Validators[0].(func(string) error)
	// attempteventDescStatus is the schema descriptor for status field.
	attempteventDescStatus := attempteventFields[8].Descriptor()
	// attemptevent.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	attemptevent.StatusValidator = attempteventDescStatus.Validators[0].(func(string) error)
	genrequesteventMixin := schema.GenRequestEvent{}.Mixin()
	genrequesteventMixinFields0 := genrequesteventMixin[0].Fields()
	_ = genrequesteventMixinFields0
	genrequesteventFields := schema.GenRequestEvent{}.Fields()
	_ = genrequesteventFields
	// genrequesteventDescTimestamp is the schema descriptor for timestamp field.
	genrequesteventDescTimestamp := genrequesteventMixinFields0[1].Descriptor()
	// genrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	genrequestevent.DefaultTimestamp = genrequesteventDescTimestamp.Default.(func() time.Time)
	// genrequesteventDescProvider is the schema descriptor for provider field.
	genrequesteventDescProvider := genrequesteventFields[0].Descriptor()
	// genrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	genrequestevent.ProviderValidator = genrequesteventDescProvider.Validators[0].(func(string) error)
	// genrequesteventDescItemsGenerated is the schema descriptor for items_generated field.
	genrequesteventDescItemsGenerated := genrequesteventFields[8].Descriptor()
	// genrequestevent.DefaultItemsGenerated holds the default value on creation for the items_generated field.
	genrequestevent.DefaultItemsGenerated = genrequesteventDescItemsGenerated.Default.(int)
	// genrequesteventDescFallbackUsed is the schema descriptor for fallback_used field.
	genrequesteventDescFallbackUsed := genrequesteventFields[9].Descriptor()
	// genrequestevent.DefaultFallbackUsed holds the default value on creation for the fallback_used field.
	genrequestevent.DefaultFallbackUsed = genrequesteventDescFallbackUsed.Default.(bool)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescItemID is the schema descriptor for item_id field.
	revieweventDescItemID := revieweventFields[0].Descriptor()
	// reviewevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	reviewevent.ItemIDValidator = revieweventDescItemID.Validators[0].(func(string) error)
	// revieweventDescTopic is the schema descriptor for topic field.
	revieweventDescTopic := revieweventFields[1].Descriptor()
	// reviewevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	reviewevent.TopicValidator = revieweventDescTopic.Validators[0].(func(string) error)
	// revieweventDescDifficulty is the schema descriptor for difficulty field.
	revieweventDescDifficulty := revieweventFields[2].Descriptor()
	// reviewevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	reviewevent.DifficultyValidator = revieweventDescDifficulty.Validators[0].(func(string) error)
	// revieweventDescTimeSecs is the schema descriptor for time_secs field.
	revieweventDescTimeSecs := revieweventFields[6].Descriptor()
	// reviewevent.DefaultTimeSecs holds the default value on creation for the time_secs field.
	reviewevent.DefaultTimeSecs = revieweventDescTimeSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
