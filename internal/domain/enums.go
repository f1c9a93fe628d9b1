package domain

type GoalStatus string

const (
	GoalInProgress GoalStatus = "EM_ANDAMENTO"
	GoalCompleted  GoalStatus = "CONCLUIDO"
	GoalCancelled  GoalStatus = "CANCELADO"
)

// ValidGoalStatuses is the canonical set of accepted goal status strings.
var ValidGoalStatuses = map[GoalStatus]bool{
	GoalInProgress: true,
	GoalCompleted:  true,
	GoalCancelled:  true,
}

type Priority string

const (
	PriorityHigh   Priority = "Alta"
	PriorityMedium Priority = "Média"
	PriorityLow    Priority = "Baixa"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[Priority]bool{
	PriorityHigh:   true,
	PriorityMedium: true,
	PriorityLow:    true,
}
