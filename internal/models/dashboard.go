package models

// DashboardSummary aggregates everything the dashboard endpoint returns
// for one user.
type DashboardSummary struct {
	TotalProjects     int            `json:"total_projects"`
	TotalTasks        int            `json:"total_tasks"`
	CompletedTasks    int            `json:"completed_tasks"`
	CompletedPercent  float64        `json:"completed_task_percentage"`
	OverdueByPriority map[string]int `json:"overdue_tasks"`
	TasksDueIn7Days   []Task         `json:"tasks_due_in_7_days"`
	TasksAssignedToMe []Task         `json:"tasks_assigned_to_me"`
	TotalComments     int            `json:"total_comments"`
}
