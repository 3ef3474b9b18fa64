// Code generated by ent, DO NOT EDIT.

package generated

import (
	"time"

	"github.com/google/uuid"
	"github.com/nestlist/nestlist/ent/generated/activityevent"
	"github.com/nestlist/nestlist/ent/generated/task"
	"github.com/nestlist/nestlist/ent/generated/todolist"
	"github.com/nestlist/nestlist/ent/generated/user"
	"github.com/nestlist/nestlist/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityeventFields := schema.ActivityEvent{}.Fields()
	_ = activityeventFields
	// activityeventDescMetadata is the schema descriptor for metadata field.
	activityeventDescMetadata := activityeventFields[6].Descriptor()
	// activityevent.DefaultMetadata holds the default value on creation for the metadata field.
	activityevent.DefaultMetadata = activityeventDescMetadata.Default.(map[string]interface{})
	// activityeventDescCreatedAt is the schema descriptor for created_at field.
	activityeventDescCreatedAt := activityeventFields[8].Descriptor()
	// activityevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	activityevent.DefaultCreatedAt = activityeventDescCreatedAt.Default.(func() time.Time)
	// activityeventDescID is the schema descriptor for id field.
	activityeventDescID := activityeventFields[0].Descriptor()
	// activityevent.DefaultID holds the default value on creation for the id field.
	activityevent.DefaultID = activityeventDescID.Default.(func() uuid.UUID)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescDescription is the schema descriptor for description field.
	taskDescDescription := taskFields[1].Descriptor()
	// task.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	task.DescriptionValidator = taskDescDescription.Validators[0].(func(string) error)
	// taskDescCompleted is the schema descriptor for completed field.
	taskDescCompleted := taskFields[2].Descriptor()
	// task.DefaultCompleted holds the default value on creation for the completed field.
	task.DefaultCompleted = taskDescCompleted.Default.(bool)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[5].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[6].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	// taskDescID is the schema descriptor for id field.
	taskDescID := taskFields[0].Descriptor()
	// task.DefaultID holds the default value on creation for the id field.
	task.DefaultID = taskDescID.Default.(func() uuid.UUID)
	todolistFields := schema.TodoList{}.Fields()
	_ = todolistFields
	// todolistDescName is the schema descriptor for name field.
	todolistDescName := todolistFields[1].Descriptor()
	// todolist.NameValidator is a validator for the "name" field. It is called by the builders before save.
	todolist.NameValidator = func() func(string) error {
		validators := todolistDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// todolistDescCreatedAt is the schema descriptor for created_at field.
	todolistDescCreatedAt := todolistFields[4].Descriptor()
	// todolist.DefaultCreatedAt holds the default value on creation for the created_at field.
	todolist.DefaultCreatedAt = todolistDescCreatedAt.Default.(func() time.Time)
	// todolistDescUpdatedAt is the schema descriptor for updated_at field.
	todolistDescUpdatedAt := todolistFields[5].Descriptor()
	// todolist.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	todolist.DefaultUpdatedAt = todolistDescUpdatedAt.Default.(func() time.Time)
	// todolist.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	todolist.UpdateDefaultUpdatedAt = todolistDescUpdatedAt.UpdateDefault.(func() time.Time)
	// todolistDescID is the schema descriptor for id field.
	todolistDescID := todolistFields[0].Descriptor()
	// todolist.DefaultID holds the default value on creation for the id field.
	todolist.DefaultID = todolistDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[2].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = func() func(string) error {
		validators := userDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[3].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[5].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescFailedLoginAttempts is the schema descriptor for failed_login_attempts field.
	userDescFailedLoginAttempts := userFields[6].Descriptor()
	// user.DefaultFailedLoginAttempts holds the default value on creation for the failed_login_attempts field.
	user.DefaultFailedLoginAttempts = userDescFailedLoginAttempts.Default.(int)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[12].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[13].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
