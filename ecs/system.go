package ecs

// System is one stage of a frame. Systems are structs whose Query and Singleton
// fields are bound by Scheduler.Register; any other fields persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
