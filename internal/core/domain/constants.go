package domain

import "errors"

// Errors returned by commands are shown to users verbatim, hence the sentence case.
var (
	ErrSendingReplyFailed = errors.New("failed to send reply")
	ErrNoArguments        = errors.New("You have provided no arguments!")
	ErrCommandNotFound    = errors.New("No command has been found by the query!")
	ErrLocationNotFound   = errors.New("No location has been found by the query!")
	ErrOwnerUnknown       = errors.New("application has no owner")
	ErrInvalidCommandName = errors.New("command names and aliases must be non-empty lowercase words")
	ErrDuplicateCommand   = errors.New("command already registered")
)

const PermissionDenied = "You do not have permissions to execute the command!"

// MaxReplyLength caps failure replies, in characters.
const MaxReplyLength = 2000

const (
	SuccessColor      = 0x705544
	FailureColor      = 0xEF433F
	ConfirmationColor = 0x78B454
	WarningColor      = 0xFFF236
)
