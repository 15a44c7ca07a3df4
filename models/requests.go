// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginWayPhonePassword is the only login method the client supports.
const LoginWayPhonePassword = "phone_pwd"

// LoginRequest is the body of POST /v1/login.
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"pwd"`
	Way      string `json:"way"`
}

// NewLoginRequest builds a phone/password login request.
func NewLoginRequest(phone, password string) LoginRequest {
	return LoginRequest{Phone: phone, Password: password, Way: LoginWayPhonePassword}
}

// LoginResponse is the data part of a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// MissionTypeSSHTime is the mission type of a time-billed SSH session.
const MissionTypeSSHTime = "ssh_time"

// DeviceClusterSingle requests a single device rather than a cluster.
const DeviceClusterSingle = "single"

// CreateMissionsRequest is the body of POST /v1/user/missions/batch.
type CreateMissionsRequest struct {
	Type              string   `json:"type"`
	CallBackURL       string   `json:"call_back_url"`
	Body              string   `json:"body"`
	GPUNum            int      `json:"gpu_num"`
	BatchSize         int      `json:"batch_size"`
	DeviceClusterType string   `json:"device_cluster_type"`
	ExtraServiceList  []string `json:"extra_service_list"`
	GPUVersion        string   `json:"gpu_version"`
	UseAuth           bool     `json:"use_auth"`
}

// NewSSHMissionRequest returns the fixed-shape creation request for one
// single-GPU SSH session on gpuVersion: no extra services, auth required.
func NewSSHMissionRequest(gpuVersion string) CreateMissionsRequest {
	return CreateMissionsRequest{
		Type:              MissionTypeSSHTime,
		CallBackURL:       "",
		Body:              "",
		GPUNum:            1,
		BatchSize:         1,
		DeviceClusterType: DeviceClusterSingle,
		ExtraServiceList:  []string{},
		GPUVersion:        gpuVersion,
		UseAuth:           true,
	}
}

// CloseMissionsRequest is the body of PUT /v1/user/missions/close/batch.
type CloseMissionsRequest struct {
	IDs []int64 `json:"ids"`
}

// ListMissionsRequest holds the query of GET /v1/user/missions.
type ListMissionsRequest struct {
	PageIndex   int
	PageSize    int
	FrontStates []MissionStatus
}
