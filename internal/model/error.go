package model

// MessageResponse is the generic {"message": ...} response body.
type MessageResponse struct {
	Message string `json:"message"`
}

// Response messages shared by handlers and middleware.
const (
	MsgUserCreated      = "User created successfully"
	MsgInvalidCreds     = "Invalid credentials"
	MsgGeneric          = "Something went wrong"
	MsgTokenMissing     = "Token is missing"
	MsgTokenExpired     = "Token has expired"
	MsgTokenInvalid     = "Invalid token"
	MsgFilePathRequired = "Csv file path is mandatory"
	MsgCSVLoaded        = "Csv data successfully loaded to database"
	MsgSummaryGenerated = "Summary Report successfully generated"
)

// Standard error codes for domain errors
const (
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeUsernameTaken      = "USERNAME_TAKEN"
	ErrCodeFilePathRequired   = "FILE_PATH_REQUIRED"
	ErrCodeInvalidCSV         = "INVALID_CSV"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidCredentials = NewDomainError(ErrCodeInvalidCredentials, MsgInvalidCreds)
	ErrUsernameTaken      = NewDomainError(ErrCodeUsernameTaken, "username already exists")
	ErrFilePathRequired   = NewDomainError(ErrCodeFilePathRequired, MsgFilePathRequired)
	ErrInvalidCSV         = NewDomainError(ErrCodeInvalidCSV, "csv file is missing a header row")
)
