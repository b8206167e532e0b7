package httpx

import "fmt"

// errNotFound builds the error body for delete handlers where the repository
// reports zero affected rows rather than a sentinel.
func errNotFound(entity string) error {
	return fmt.Errorf("%s not found", entity)
}
