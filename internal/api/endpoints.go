package api

// Service names
const (
	AuthService   = "tasktrack.Auth"
	TasksService  = "tasktrack.Tasks"
	SystemService = "tasktrack.System"
	HealthService = "grpc.health.v1.Health"
)

// Authentication endpoints
const (
	AuthRegister          = "/tasktrack.Auth/Register"
	AuthLogin             = "/tasktrack.Auth/Login"
	AuthLogout            = "/tasktrack.Auth/Logout"
	AuthRefresh           = "/tasktrack.Auth/Refresh"
	AuthMe                = "/tasktrack.Auth/Me"
	AuthUpdateProfile     = "/tasktrack.Auth/UpdateProfile"
	AuthUpdatePreferences = "/tasktrack.Auth/UpdatePreferences"
	AuthChangePassword    = "/tasktrack.Auth/ChangePassword"
	AuthDeleteAccount     = "/tasktrack.Auth/DeleteAccount"
)

// Task endpoints
const (
	TasksCreate = "/tasktrack.Tasks/CreateTask"
	TasksList   = "/tasktrack.Tasks/ListTasks"
	TasksGet    = "/tasktrack.Tasks/GetTask"
	TasksMove   = "/tasktrack.Tasks/MoveTask"
	TasksToggle = "/tasktrack.Tasks/ToggleTask"
	TasksDelete = "/tasktrack.Tasks/DeleteTask"
)

const (
	SystemInfo  = "/tasktrack.System/Info"
	HealthCheck = "/grpc.health.v1.Health/Check"
)

// PublicEndpoints defines endpoints that don't require authentication. They
// still resolve a caller identity when a valid token is present.
var PublicEndpoints = map[string]bool{
	AuthRegister: true,
	AuthLogin:    true,
	AuthRefresh:  true,
	SystemInfo:   true,
	HealthCheck:  true,
}
