// Package services implements the handler layer of the catalog: typed entity
// services that validate caller input, translate beans to repository property
// bags, delegate to the repository gateway, and convert results back.
//
// Services are composed, not inherited: the generic attachment service and
// the last-attachment tracker are injected into each entity service that
// needs them.
package services

import (
	"strings"

	"github.com/opencatalog/metacat/internal/types"
)

// validateUserID checks the caller identity precondition shared by every
// operation.
func validateUserID(userID, methodName string) error {
	if strings.TrimSpace(userID) == "" {
		return types.NewInvalidParameterf("%s: userId is null or blank", methodName)
	}
	return nil
}

// validateGUID checks a unique identifier argument.
func validateGUID(guid, parameterName, methodName string) error {
	if strings.TrimSpace(guid) == "" {
		return types.NewInvalidParameterf("%s: %s is null or blank", methodName, parameterName)
	}
	return nil
}

// validateName checks a required name argument.
func validateName(name, parameterName, methodName string) error {
	if strings.TrimSpace(name) == "" {
		return types.NewInvalidParameterf("%s: %s is null or blank", methodName, parameterName)
	}
	return nil
}

// validateText checks a required free-text argument.
func validateText(text, parameterName, methodName string) error {
	if strings.TrimSpace(text) == "" {
		return types.NewInvalidParameterf("%s: %s is null or blank", methodName, parameterName)
	}
	return nil
}

// validateEnum checks that value is one of the accepted values.
func validateEnum[T ~string](value T, valid []T, parameterName, methodName string) error {
	for _, v := range valid {
		if value == v {
			return nil
		}
	}
	return types.NewInvalidParameterf("%s: %s value %q is not recognized", methodName, parameterName, string(value))
}

// validatePaging checks the paging request and returns the accepted page
// size. A zero page size is not a valid paging request, and a size above the
// configured maximum is rejected rather than silently shortened: a caller
// who asked for more rows than a page can hold must learn that, not receive
// a full-looking page and conclude the result set is complete.
func validatePaging(startFrom, pageSize, maxPageSize int, methodName string) (int, error) {
	if startFrom < 0 {
		return 0, types.NewInvalidParameterf("%s: startFrom %d is negative", methodName, startFrom)
	}
	if pageSize <= 0 {
		return 0, types.NewInvalidParameterf("%s: pageSize %d is not a positive page size", methodName, pageSize)
	}
	if pageSize > maxPageSize {
		return 0, types.NewInvalidParameterf("%s: pageSize %d exceeds the maximum of %d", methodName, pageSize, maxPageSize)
	}
	return pageSize, nil
}
