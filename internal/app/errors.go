package app

type PlanErrorCode string

const (
	ErrInvalidInput  PlanErrorCode = "INVALID_INPUT"
	ErrConfiguration PlanErrorCode = "CONFIGURATION_ERROR"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
