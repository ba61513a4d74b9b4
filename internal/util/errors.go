package util

import "errors"

var (
	ErrCourseNotFound  = errors.New("Course not found")
	ErrSectionNotFound = errors.New("Section not found")
	ErrLessonNotFound  = errors.New("Lesson not found")

	ErrNotCourseOwner = errors.New("Not authorized to update this course")

	ErrUserNotFound       = errors.New("User not found")
	ErrEmailRegistered    = errors.New("Email already registered")
	ErrInvalidCredentials = errors.New("Invalid email or password")
)

// ValidationError 校验错误，控制器层映射为 400
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Invalid 构造一个校验错误
func Invalid(message string) error {
	return &ValidationError{Message: message}
}

// IsValidation 判断是否为校验错误
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
