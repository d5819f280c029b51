package entity

import "fmt"

// Result is the outcome of a placement attempt.
type Result struct {
	IsSuccess bool
	Message   string
	Err       error
}

func Success(message string) Result {
	return Result{IsSuccess: true, Message: message}
}

func Rejected(message string, err error) Result {
	return Result{Message: message, Err: err}
}

func (that Result) String() string {
	return fmt.Sprintf("Result{success=%t, message='%s'}", that.IsSuccess, that.Message)
}
