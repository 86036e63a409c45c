package service

import "errors"

var (
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrLoanNotFound          = errors.New("loan not found")
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrReceiptTargetRequired = errors.New("paymentId or loanId is required")
	ErrInvalidCopy           = errors.New("type must be customer or admin")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrForbidden          = errors.New("unauthorized")

	ErrFileRequired     = errors.New("no file provided")
	ErrInvalidFileType  = errors.New("invalid file type")
	ErrFileTooLarge     = errors.New("file size too large")
	ErrInvalidKind      = errors.New("invalid upload type")
	ErrFilenameRequired = errors.New("filename is required")
	ErrInvalidFilename  = errors.New("invalid filename")
	ErrFileNotFound     = errors.New("file not found")
)
