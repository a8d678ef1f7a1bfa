package azdo

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrMissingOrganization = errors.New("azure devops organization url is required")

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Method     string
	URL        string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("azure devops API %s %s error %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// IsNotFound reports whether err is a 404 from Azure DevOps.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
