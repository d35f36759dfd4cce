package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	pb "github.com/elskow/tasktrack/proto/gen/tasktrack"
)

func TestEndpointsMatchGeneratedMethods(t *testing.T) {
	tests := []struct {
		endpoint string
		method   string
	}{
		{AuthRegister, pb.Auth_Register_FullMethodName},
		{AuthLogin, pb.Auth_Login_FullMethodName},
		{AuthLogout, pb.Auth_Logout_FullMethodName},
		{AuthRefresh, pb.Auth_Refresh_FullMethodName},
		{AuthMe, pb.Auth_Me_FullMethodName},
		{AuthUpdateProfile, pb.Auth_UpdateProfile_FullMethodName},
		{AuthUpdatePreferences, pb.Auth_UpdatePreferences_FullMethodName},
		{AuthChangePassword, pb.Auth_ChangePassword_FullMethodName},
		{AuthDeleteAccount, pb.Auth_DeleteAccount_FullMethodName},
		{TasksCreate, pb.Tasks_CreateTask_FullMethodName},
		{TasksList, pb.Tasks_ListTasks_FullMethodName},
		{TasksGet, pb.Tasks_GetTask_FullMethodName},
		{TasksMove, pb.Tasks_MoveTask_FullMethodName},
		{TasksToggle, pb.Tasks_ToggleTask_FullMethodName},
		{TasksDelete, pb.Tasks_DeleteTask_FullMethodName},
		{SystemInfo, pb.System_Info_FullMethodName},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			assert.Equal(t, tt.method, tt.endpoint)
		})
	}

	assert.Equal(t, AuthService, pb.Auth_ServiceDesc.ServiceName)
	assert.Equal(t, TasksService, pb.Tasks_ServiceDesc.ServiceName)
	assert.Equal(t, SystemService, pb.System_ServiceDesc.ServiceName)
}
