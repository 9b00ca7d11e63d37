// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/smehra/lingo/ent/completionevent"
	"github.com/smehra/lingo/ent/progresssnapshot"
	"github.com/smehra/lingo/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	completioneventMixin := schema.CompletionEvent{}.Mixin()
	completioneventMixinFields0 := completioneventMixin[0].Fields()
	_ = completioneventMixinFields0
	completioneventFields := schema.CompletionEvent{}.Fields()
	_ = completioneventFields
	// completioneventDescTimestamp is the schema descriptor for timestamp field.
	completioneventDescTimestamp := completioneventMixinFields0[1].Descriptor()
	// completionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	completionevent.DefaultTimestamp = completioneventDescTimestamp.Default.(func() time.Time)
	// completioneventDescAction is the schema descriptor for action field.
	completioneventDescAction := completioneventFields[0].Descriptor()
	// completionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	completionevent.ActionValidator = completioneventDescAction.Validators[0].(func(string) error)
	// completioneventDescNewlyUnlocked is the schema descriptor for newly_unlocked field.
	completioneventDescNewlyUnlocked := completioneventFields[2].Descriptor()
	// completionevent.DefaultNewlyUnlocked holds the default value on creation for the newly_unlocked field.
	completionevent.DefaultNewlyUnlocked = completioneventDescNewlyUnlocked.Default.(int)
	progresssnapshotFields := schema.ProgressSnapshot{}.Fields()
	_ = progresssnapshotFields
	// progresssnapshotDescTimestamp is the schema descriptor for timestamp field.
	progresssnapshotDescTimestamp := progresssnapshotFields[1].Descriptor()
	// progresssnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	progresssnapshot.DefaultTimestamp = progresssnapshotDescTimestamp.Default.(func() time.Time)
}
