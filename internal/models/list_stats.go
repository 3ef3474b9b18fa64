package models

// ListStats is the row shape of the per-list aggregate query.
type ListStats struct {
	ListID         string `db:"list_id"`
	TotalTasks     int    `db:"total_tasks"`
	CompletedTasks int    `db:"completed_tasks"`
	TopLevelTasks  int    `db:"top_level_tasks"`
}
