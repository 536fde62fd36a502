package util

type WdeCmdError = int

// general
const (
	ErrorSuccess   WdeCmdError = 0
	ErrorGeneric   WdeCmdError = 1
	ErrorCmdArg    WdeCmdError = 2
	ErrorScheduler WdeCmdError = 3
	ErrorBackend   WdeCmdError = 4
)

type WdeError struct {
	Code    WdeCmdError
	Message string
}

func (e *WdeError) Error() string {
	return e.Message
}

func NewWdeErr(code WdeCmdError, message string) *WdeError {
	return &WdeError{
		Code:    code,
		Message: message,
	}
}

func WrapWdeErr(code WdeCmdError, message string, err error) *WdeError {
	return &WdeError{
		Code:    code,
		Message: message + ": " + err.Error(),
	}
}
