package dto

// ApiResponse is the success envelope every handler returns.
type ApiResponse struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
}

func OK(status int, data any, message string) ApiResponse {
	return ApiResponse{StatusCode: status, Data: data, Message: message, Success: status < 400}
}

type HealthResp struct {
	Status string `json:"status"`
}
