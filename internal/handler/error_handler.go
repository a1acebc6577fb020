package handler

import (
	"errors"

	"bboard-api/internal/response"
)

// appErrCode extracts the AppError code, or empty for foreign errors
func appErrCode(err error) string {
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// isValidation reports whether the error is a rejected submission
func isValidation(err error) bool {
	return appErrCode(err) == response.ErrCodeValidation
}

// isNotFound reports whether the error is a lookup miss
func isNotFound(err error) bool {
	return appErrCode(err) == response.ErrCodeNotFound
}

// userMessage returns the message safe to show to the end user
func userMessage(err error) string {
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Something went wrong"
}
