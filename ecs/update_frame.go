package ecs

import "context"

// UpdateFrame is what a system sees of the frame being simulated.
type UpdateFrame struct {
	Context   context.Context
	DeltaTime float64
	Commands  *Commands
	Storage   *Storage
}
