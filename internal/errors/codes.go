package errors

type Code string

const (
	CodeUnknown             Code = "UNKNOWN"
	CodeInternal            Code = "INTERNAL_ERROR"
	CodeInvalidInput        Code = "INVALID_INPUT"
	CodeConfigValidation    Code = "CONFIG_VALIDATION_ERROR"
	CodeConfigReadError     Code = "CONFIG_READ_ERROR"
	CodeConfigParseError    Code = "CONFIG_PARSE_ERROR"
	CodePlatformAPIError    Code = "PLATFORM_API_ERROR"
	CodePlatformAuthError   Code = "PLATFORM_AUTH_ERROR"
	CodeResourceNotFound    Code = "RESOURCE_NOT_FOUND"
	CodePaginationExhausted Code = "PAGINATION_EXHAUSTED"
	CodeNotificationError   Code = "NOTIFICATION_ERROR"
	CodeAlarmFileError      Code = "ALARM_FILE_ERROR"
	CodeReportError         Code = "REPORT_ERROR"
	CodeNotImplemented      Code = "NOT_IMPLEMENTED"
	CodeTimeout             Code = "TIMEOUT_ERROR"
)

func (c Code) String() string {
	return string(c)
}
