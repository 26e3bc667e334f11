package models

// User roles
const (
	RoleAdmin              = "admin"
	RoleTeacher            = "teacher"
	RoleStudent            = "student"
	RoleStudentCoordinator = "student_coordinator"
)

// School statuses
const (
	SchoolActive    = "active"
	SchoolInactive  = "inactive"
	SchoolSuspended = "suspended"
)

// Event statuses
const (
	EventUpcoming  = "upcoming"
	EventOngoing   = "ongoing"
	EventCompleted = "completed"
	EventCancelled = "cancelled"
)

// Task statuses
const (
	TaskPending   = "pending"
	TaskCompleted = "completed"
	TaskCancelled = "cancelled"
)

// Team member roles
const (
	TeamLeader = "leader"
	TeamMember = "member"
)
