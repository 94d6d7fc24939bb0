// Package errors provides categorized errors for the wallet wrapped
// service. The metrics core itself raises no errors; this taxonomy covers
// the outer layers: bad requests, provider failures and cache trouble.
package errors

import (
	"fmt"
	"net/http"

	"github.com/wallet-wrapped/internal/types"
)

// ErrorCategory represents the category of an error
type ErrorCategory string

const (
	// CategoryUserInput represents user input errors (4xx)
	CategoryUserInput ErrorCategory = "user_input"
	// CategoryProvider represents data provider errors
	CategoryProvider ErrorCategory = "provider"
	// CategoryCache represents cache errors
	CategoryCache ErrorCategory = "cache"
	// CategoryNotFound represents not found errors
	CategoryNotFound ErrorCategory = "not_found"
	// CategorySystem represents system errors (5xx)
	CategorySystem ErrorCategory = "system"
)

// CategorizedError represents an error with category and HTTP status code
type CategorizedError struct {
	Category   ErrorCategory
	StatusCode int
	Code       string
	Message    string
	Details    map[string]interface{}
	Cause      error
}

// Error implements the error interface
func (e *CategorizedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e *CategorizedError) Unwrap() error {
	return e.Cause
}

// ToServiceError converts to a ServiceError
func (e *CategorizedError) ToServiceError() *types.ServiceError {
	return &types.ServiceError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	}
}

// NewInvalidAddressError creates an invalid address error
func NewInvalidAddressError(address string) *CategorizedError {
	return &CategorizedError{
		Category:   CategoryUserInput,
		StatusCode: http.StatusBadRequest,
		Code:       "INVALID_ADDRESS",
		Message:    fmt.Sprintf("invalid address format: %s", address),
		Details: map[string]interface{}{
			"address": address,
		},
	}
}

// NewInvalidChainError creates an unsupported chain error
func NewInvalidChainError(chain string) *CategorizedError {
	return &CategorizedError{
		Category:   CategoryUserInput,
		StatusCode: http.StatusBadRequest,
		Code:       "INVALID_CHAIN",
		Message:    fmt.Sprintf("unsupported chain: %s", chain),
		Details: map[string]interface{}{
			"chain": chain,
		},
	}
}

// NewInvalidFIDError creates an invalid Farcaster ID error
func NewInvalidFIDError(fid string) *CategorizedError {
	return &CategorizedError{
		Category:   CategoryUserInput,
		StatusCode: http.StatusBadRequest,
		Code:       "INVALID_FID",
		Message:    fmt.Sprintf("invalid Farcaster ID: %s", fid),
		Details: map[string]interface{}{
			"fid": fid,
		},
	}
}

// NewUserNotFoundError creates an error for FIDs with no resolvable wallet
func NewUserNotFoundError(fid int64) *CategorizedError {
	return &CategorizedError{
		Category:   CategoryNotFound,
		StatusCode: http.StatusNotFound,
		Code:       "USER_NOT_FOUND",
		Message:    fmt.Sprintf("no wallet address found for FID %d", fid),
		Details: map[string]interface{}{
			"fid": fid,
		},
	}
}

// NewProviderError creates a data provider error
func NewProviderError(provider, operation string, cause error) *CategorizedError {
	return &CategorizedError{
		Category:   CategoryProvider,
		StatusCode: http.StatusBadGateway,
		Code:       "PROVIDER_ERROR",
		Message:    fmt.Sprintf("%s: %s failed", provider, operation),
		Details: map[string]interface{}{
			"provider":  provider,
			"operation": operation,
		},
		Cause: cause,
	}
}

// NewProviderStatusError creates an error for non-2xx provider responses
func NewProviderStatusError(provider, operation string, statusCode int) *CategorizedError {
	return &CategorizedError{
		Category:   CategoryProvider,
		StatusCode: http.StatusBadGateway,
		Code:       "PROVIDER_STATUS",
		Message:    fmt.Sprintf("%s: %s returned status %d", provider, operation, statusCode),
		Details: map[string]interface{}{
			"provider":   provider,
			"operation":  operation,
			"statusCode": statusCode,
		},
	}
}

// NewCacheError creates a cache error
func NewCacheError(operation string, cause error) *CategorizedError {
	return &CategorizedError{
		Category:   CategoryCache,
		StatusCode: http.StatusInternalServerError,
		Code:       "CACHE_ERROR",
		Message:    fmt.Sprintf("cache %s failed", operation),
		Cause:      cause,
	}
}

// NewInternalError creates a generic system error
func NewInternalError(message string, cause error) *CategorizedError {
	return &CategorizedError{
		Category:   CategorySystem,
		StatusCode: http.StatusInternalServerError,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		Cause:      cause,
	}
}
