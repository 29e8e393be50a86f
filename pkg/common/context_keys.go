package common

type contextKey string

const (
	UserIDContextKey  contextKey = "user_id"
	LatencyContextKey contextKey = "__execution_time"
)
