// Code generated by ent, DO NOT EDIT.

package generated

import (
	"github.com/nestlist/nestlist/ent/generated/activityevent"
	"github.com/nestlist/nestlist/ent/generated/predicate"
	"github.com/nestlist/nestlist/ent/generated/task"
	"github.com/nestlist/nestlist/ent/generated/todolist"
	"github.com/nestlist/nestlist/ent/generated/user"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/entql"
	"entgo.io/ent/schema/field"
)

// schemaGraph holds a representation of ent/schema at runtime.
var schemaGraph = func() *sqlgraph.Schema {
	graph := &sqlgraph.Schema{Nodes: make([]*sqlgraph.Node, 4)}
	graph.Nodes[0] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   activityevent.Table,
			Columns: activityevent.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: activityevent.FieldID,
			},
		},
		Type: "ActivityEvent",
		Fields: map[string]*sqlgraph.FieldSpec{
			activityevent.FieldUserID:      {Type: field.TypeUUID, Column: activityevent.FieldUserID},
			activityevent.FieldEventType:   {Type: field.TypeEnum, Column: activityevent.FieldEventType},
			activityevent.FieldIPAddress:   {Type: field.TypeString, Column: activityevent.FieldIPAddress},
			activityevent.FieldUserAgent:   {Type: field.TypeString, Column: activityevent.FieldUserAgent},
			activityevent.FieldDescription: {Type: field.TypeString, Column: activityevent.FieldDescription},
			activityevent.FieldMetadata:    {Type: field.TypeJSON, Column: activityevent.FieldMetadata},
			activityevent.FieldSeverity:    {Type: field.TypeEnum, Column: activityevent.FieldSeverity},
			activityevent.FieldCreatedAt:   {Type: field.TypeTime, Column: activityevent.FieldCreatedAt},
		},
	}
	graph.Nodes[1] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   task.Table,
			Columns: task.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: task.FieldID,
			},
		},
		Type: "Task",
		Fields: map[string]*sqlgraph.FieldSpec{
			task.FieldDescription: {Type: field.TypeString, Column: task.FieldDescription},
			task.FieldCompleted:   {Type: field.TypeBool, Column: task.FieldCompleted},
			task.FieldListID:      {Type: field.TypeUUID, Column: task.FieldListID},
			task.FieldParentID:    {Type: field.TypeUUID, Column: task.FieldParentID},
			task.FieldCreatedAt:   {Type: field.TypeTime, Column: task.FieldCreatedAt},
			task.FieldUpdatedAt:   {Type: field.TypeTime, Column: task.FieldUpdatedAt},
		},
	}
	graph.Nodes[2] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   todolist.Table,
			Columns: todolist.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: todolist.FieldID,
			},
		},
		Type: "TodoList",
		Fields: map[string]*sqlgraph.FieldSpec{
			todolist.FieldName:        {Type: field.TypeString, Column: todolist.FieldName},
			todolist.FieldDescription: {Type: field.TypeString, Column: todolist.FieldDescription},
			todolist.FieldOwnerID:     {Type: field.TypeUUID, Column: todolist.FieldOwnerID},
			todolist.FieldCreatedAt:   {Type: field.TypeTime, Column: todolist.FieldCreatedAt},
			todolist.FieldUpdatedAt:   {Type: field.TypeTime, Column: todolist.FieldUpdatedAt},
		},
	}
	graph.Nodes[3] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   user.Table,
			Columns: user.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: user.FieldID,
			},
		},
		Type: "User",
		Fields: map[string]*sqlgraph.FieldSpec{
			user.FieldEmail:                 {Type: field.TypeString, Column: user.FieldEmail},
			user.FieldUsername:              {Type: field.TypeString, Column: user.FieldUsername},
			user.FieldPasswordHash:          {Type: field.TypeString, Column: user.FieldPasswordHash},
			user.FieldRole:                  {Type: field.TypeEnum, Column: user.FieldRole},
			user.FieldIsActive:              {Type: field.TypeBool, Column: user.FieldIsActive},
			user.FieldFailedLoginAttempts:   {Type: field.TypeInt, Column: user.FieldFailedLoginAttempts},
			user.FieldAccountLockedUntil:    {Type: field.TypeTime, Column: user.FieldAccountLockedUntil},
			user.FieldLastLogin:             {Type: field.TypeTime, Column: user.FieldLastLogin},
			user.FieldLastLoginIP:           {Type: field.TypeString, Column: user.FieldLastLoginIP},
			user.FieldRefreshToken:          {Type: field.TypeString, Column: user.FieldRefreshToken},
			user.FieldRefreshTokenExpiresAt: {Type: field.TypeTime, Column: user.FieldRefreshTokenExpiresAt},
			user.FieldCreatedAt:             {Type: field.TypeTime, Column: user.FieldCreatedAt},
			user.FieldUpdatedAt:             {Type: field.TypeTime, Column: user.FieldUpdatedAt},
		},
	}
	graph.MustAddE(
		"user",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   activityevent.UserTable,
			Columns: []string{activityevent.UserColumn},
			Bidi:    false,
		},
		"ActivityEvent",
		"User",
	)
	graph.MustAddE(
		"list",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.ListTable,
			Columns: []string{task.ListColumn},
			Bidi:    false,
		},
		"Task",
		"TodoList",
	)
	graph.MustAddE(
		"parent",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.ParentTable,
			Columns: []string{task.ParentColumn},
			Bidi:    false,
		},
		"Task",
		"Task",
	)
	graph.MustAddE(
		"subtasks",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.SubtasksTable,
			Columns: []string{task.SubtasksColumn},
			Bidi:    false,
		},
		"Task",
		"Task",
	)
	graph.MustAddE(
		"owner",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   todolist.OwnerTable,
			Columns: []string{todolist.OwnerColumn},
			Bidi:    false,
		},
		"TodoList",
		"User",
	)
	graph.MustAddE(
		"tasks",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   todolist.TasksTable,
			Columns: []string{todolist.TasksColumn},
			Bidi:    false,
		},
		"TodoList",
		"Task",
	)
	graph.MustAddE(
		"lists",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ListsTable,
			Columns: []string{user.ListsColumn},
			Bidi:    false,
		},
		"User",
		"TodoList",
	)
	graph.MustAddE(
		"activity_events",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ActivityEventsTable,
			Columns: []string{user.ActivityEventsColumn},
			Bidi:    false,
		},
		"User",
		"ActivityEvent",
	)
	return graph
}()

// predicateAdder wraps the addPredicate method.
// All update, update-one and query builders implement this interface.
type predicateAdder interface {
	addPredicate(func(s *sql.Selector))
}

// addPredicate implements the predicateAdder interface.
func (_q *ActivityEventQuery) addPredicate(pred func(s *sql.Selector)) {
	_q.predicates = append(_q.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the ActivityEventQuery builder.
func (_q *ActivityEventQuery) Filter() *ActivityEventFilter {
	return &ActivityEventFilter{config: _q.config, predicateAdder: _q}
}

// addPredicate implements the predicateAdder interface.
func (m *ActivityEventMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the ActivityEventMutation builder.
func (m *ActivityEventMutation) Filter() *ActivityEventFilter {
	return &ActivityEventFilter{config: m.config, predicateAdder: m}
}

// ActivityEventFilter provides a generic filtering capability at runtime for ActivityEventQuery.
type ActivityEventFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *ActivityEventFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[0].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *ActivityEventFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(activityevent.FieldID))
}

// WhereUserID applies the entql [16]byte predicate on the user_id field.
func (f *ActivityEventFilter) WhereUserID(p entql.ValueP) {
	f.Where(p.Field(activityevent.FieldUserID))
}

// WhereEventType applies the entql string predicate on the event_type field.
func (f *ActivityEventFilter) WhereEventType(p entql.StringP) {
	f.Where(p.Field(activityevent.FieldEventType))
}

// WhereIPAddress applies the entql string predicate on the ip_address field.
func (f *ActivityEventFilter) WhereIPAddress(p entql.StringP) {
	f.Where(p.Field(activityevent.FieldIPAddress))
}

// WhereUserAgent applies the entql string predicate on the user_agent field.
func (f *ActivityEventFilter) WhereUserAgent(p entql.StringP) {
	f.Where(p.Field(activityevent.FieldUserAgent))
}

// WhereDescription applies the entql string predicate on the description field.
func (f *ActivityEventFilter) WhereDescription(p entql.StringP) {
	f.Where(p.Field(activityevent.FieldDescription))
}

// WhereMetadata applies the entql json.RawMessage predicate on the metadata field.
func (f *ActivityEventFilter) WhereMetadata(p entql.BytesP) {
	f.Where(p.Field(activityevent.FieldMetadata))
}

// WhereSeverity applies the entql string predicate on the severity field.
func (f *ActivityEventFilter) WhereSeverity(p entql.StringP) {
	f.Where(p.Field(activityevent.FieldSeverity))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *ActivityEventFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(activityevent.FieldCreatedAt))
}

// WhereHasUser applies a predicate to check if query has an edge user.
func (f *ActivityEventFilter) WhereHasUser() {
	f.Where(entql.HasEdge("user"))
}

// WhereHasUserWith applies a predicate to check if query has an edge user with a given conditions (other predicates).
func (f *ActivityEventFilter) WhereHasUserWith(preds ...predicate.User) {
	f.Where(entql.HasEdgeWith("user", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (_q *TaskQuery) addPredicate(pred func(s *sql.Selector)) {
	_q.predicates = append(_q.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the TaskQuery builder.
func (_q *TaskQuery) Filter() *TaskFilter {
	return &TaskFilter{config: _q.config, predicateAdder: _q}
}

// addPredicate implements the predicateAdder interface.
func (m *TaskMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the TaskMutation builder.
func (m *TaskMutation) Filter() *TaskFilter {
	return &TaskFilter{config: m.config, predicateAdder: m}
}

// TaskFilter provides a generic filtering capability at runtime for TaskQuery.
type TaskFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *TaskFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[1].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *TaskFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(task.FieldID))
}

// WhereDescription applies the entql string predicate on the description field.
func (f *TaskFilter) WhereDescription(p entql.StringP) {
	f.Where(p.Field(task.FieldDescription))
}

// WhereCompleted applies the entql bool predicate on the completed field.
func (f *TaskFilter) WhereCompleted(p entql.BoolP) {
	f.Where(p.Field(task.FieldCompleted))
}

// WhereListID applies the entql [16]byte predicate on the list_id field.
func (f *TaskFilter) WhereListID(p entql.ValueP) {
	f.Where(p.Field(task.FieldListID))
}

// WhereParentID applies the entql [16]byte predicate on the parent_id field.
func (f *TaskFilter) WhereParentID(p entql.ValueP) {
	f.Where(p.Field(task.FieldParentID))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *TaskFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(task.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *TaskFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(task.FieldUpdatedAt))
}

// WhereHasList applies a predicate to check if query has an edge list.
func (f *TaskFilter) WhereHasList() {
	f.Where(entql.HasEdge("list"))
}

// WhereHasListWith applies a predicate to check if query has an edge list with a given conditions (other predicates).
func (f *TaskFilter) WhereHasListWith(preds ...predicate.TodoList) {
	f.Where(entql.HasEdgeWith("list", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasParent applies a predicate to check if query has an edge parent.
func (f *TaskFilter) WhereHasParent() {
	f.Where(entql.HasEdge("parent"))
}

// WhereHasParentWith applies a predicate to check if query has an edge parent with a given conditions (other predicates).
func (f *TaskFilter) WhereHasParentWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("parent", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasSubtasks applies a predicate to check if query has an edge subtasks.
func (f *TaskFilter) WhereHasSubtasks() {
	f.Where(entql.HasEdge("subtasks"))
}

// WhereHasSubtasksWith applies a predicate to check if query has an edge subtasks with a given conditions (other predicates).
func (f *TaskFilter) WhereHasSubtasksWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("subtasks", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (_q *TodoListQuery) addPredicate(pred func(s *sql.Selector)) {
	_q.predicates = append(_q.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the TodoListQuery builder.
func (_q *TodoListQuery) Filter() *TodoListFilter {
	return &TodoListFilter{config: _q.config, predicateAdder: _q}
}

// addPredicate implements the predicateAdder interface.
func (m *TodoListMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the TodoListMutation builder.
func (m *TodoListMutation) Filter() *TodoListFilter {
	return &TodoListFilter{config: m.config, predicateAdder: m}
}

// TodoListFilter provides a generic filtering capability at runtime for TodoListQuery.
type TodoListFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *TodoListFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[2].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *TodoListFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(todolist.FieldID))
}

// WhereName applies the entql string predicate on the name field.
func (f *TodoListFilter) WhereName(p entql.StringP) {
	f.Where(p.Field(todolist.FieldName))
}

// WhereDescription applies the entql string predicate on the description field.
func (f *TodoListFilter) WhereDescription(p entql.StringP) {
	f.Where(p.Field(todolist.FieldDescription))
}

// WhereOwnerID applies the entql [16]byte predicate on the owner_id field.
func (f *TodoListFilter) WhereOwnerID(p entql.ValueP) {
	f.Where(p.Field(todolist.FieldOwnerID))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *TodoListFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(todolist.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *TodoListFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(todolist.FieldUpdatedAt))
}

// WhereHasOwner applies a predicate to check if query has an edge owner.
func (f *TodoListFilter) WhereHasOwner() {
	f.Where(entql.HasEdge("owner"))
}

// WhereHasOwnerWith applies a predicate to check if query has an edge owner with a given conditions (other predicates).
func (f *TodoListFilter) WhereHasOwnerWith(preds ...predicate.User) {
	f.Where(entql.HasEdgeWith("owner", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasTasks applies a predicate to check if query has an edge tasks.
func (f *TodoListFilter) WhereHasTasks() {
	f.Where(entql.HasEdge("tasks"))
}

// WhereHasTasksWith applies a predicate to check if query has an edge tasks with a given conditions (other predicates).
func (f *TodoListFilter) WhereHasTasksWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("tasks", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (_q *UserQuery) addPredicate(pred func(s *sql.Selector)) {
	_q.predicates = append(_q.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the UserQuery builder.
func (_q *UserQuery) Filter() *UserFilter {
	return &UserFilter{config: _q.config, predicateAdder: _q}
}

// addPredicate implements the predicateAdder interface.
func (m *UserMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the UserMutation builder.
func (m *UserMutation) Filter() *UserFilter {
	return &UserFilter{config: m.config, predicateAdder: m}
}

// UserFilter provides a generic filtering capability at runtime for UserQuery.
type UserFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *UserFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[3].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *UserFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(user.FieldID))
}

// WhereEmail applies the entql string predicate on the email field.
func (f *UserFilter) WhereEmail(p entql.StringP) {
	f.Where(p.Field(user.FieldEmail))
}

// WhereUsername applies the entql string predicate on the username field.
func (f *UserFilter) WhereUsername(p entql.StringP) {
	f.Where(p.Field(user.FieldUsername))
}

// WherePasswordHash applies the entql string predicate on the password_hash field.
func (f *UserFilter) WherePasswordHash(p entql.StringP) {
	f.Where(p.Field(user.FieldPasswordHash))
}

// WhereRole applies the entql string predicate on the role field.
func (f *UserFilter) WhereRole(p entql.StringP) {
	f.Where(p.Field(user.FieldRole))
}

// WhereIsActive applies the entql bool predicate on the is_active field.
func (f *UserFilter) WhereIsActive(p entql.BoolP) {
	f.Where(p.Field(user.FieldIsActive))
}

// WhereFailedLoginAttempts applies the entql int predicate on the failed_login_attempts field.
func (f *UserFilter) WhereFailedLoginAttempts(p entql.IntP) {
	f.Where(p.Field(user.FieldFailedLoginAttempts))
}

// WhereAccountLockedUntil applies the entql time.Time predicate on the account_locked_until field.
func (f *UserFilter) WhereAccountLockedUntil(p entql.TimeP) {
	f.Where(p.Field(user.FieldAccountLockedUntil))
}

// WhereLastLogin applies the entql time.Time predicate on the last_login field.
func (f *UserFilter) WhereLastLogin(p entql.TimeP) {
	f.Where(p.Field(user.FieldLastLogin))
}

// WhereLastLoginIP applies the entql string predicate on the last_login_ip field.
func (f *UserFilter) WhereLastLoginIP(p entql.StringP) {
	f.Where(p.Field(user.FieldLastLoginIP))
}

// WhereRefreshToken applies the entql string predicate on the refresh_token field.
func (f *UserFilter) WhereRefreshToken(p entql.StringP) {
	f.Where(p.Field(user.FieldRefreshToken))
}

// WhereRefreshTokenExpiresAt applies the entql time.Time predicate on the refresh_token_expires_at field.
func (f *UserFilter) WhereRefreshTokenExpiresAt(p entql.TimeP) {
	f.Where(p.Field(user.FieldRefreshTokenExpiresAt))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *UserFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(user.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *UserFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(user.FieldUpdatedAt))
}

// WhereHasLists applies a predicate to check if query has an edge lists.
func (f *UserFilter) WhereHasLists() {
	f.Where(entql.HasEdge("lists"))
}

// WhereHasListsWith applies a predicate to check if query has an edge lists with a given conditions (other predicates).
func (f *UserFilter) WhereHasListsWith(preds ...predicate.TodoList) {
	f.Where(entql.HasEdgeWith("lists", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasActivityEvents applies a predicate to check if query has an edge activity_events.
func (f *UserFilter) WhereHasActivityEvents() {
	f.Where(entql.HasEdge("activity_events"))
}

// WhereHasActivityEventsWith applies a predicate to check if query has an edge activity_events with a given conditions (other predicates).
func (f *UserFilter) WhereHasActivityEventsWith(preds ...predicate.ActivityEvent) {
	f.Where(entql.HasEdgeWith("activity_events", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}
