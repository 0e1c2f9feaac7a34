package usecase

// DomainError is a business-rule rejection the client can act on. Handlers map
// codes to HTTP statuses.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is an infrastructure failure (store or asset). Always a 500;
// never retried.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

const (
	CodeInvalidEmail  = "INVALID_EMAIL"
	CodeTokenRequired = "TOKEN_REQUIRED"
	CodeTokenNotFound = "TOKEN_NOT_FOUND"
	CodeTokenExpired  = "TOKEN_EXPIRED"
	CodeStoreError    = "STORE_ERROR"
	CodeAssetError    = "ASSET_ERROR"
)
