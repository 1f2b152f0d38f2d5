// SPDX-License-Identifier: MPL-2.0

package genesys

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound matches an APIError with status 404.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized matches an APIError with status 401 or 403.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotAuthenticated is returned when an API call is made before
	// Authenticate succeeded.
	ErrNotAuthenticated = errors.New("not authenticated")
)

type (
	// User is the subset of a Genesys Cloud user that lookup prints.
	User struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	// Queue is the subset of a routing queue that lookup prints.
	Queue struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	// Participant is one party of a conversation.
	Participant struct {
		ID         string         `json:"id"`
		Purpose    string         `json:"purpose"`
		Name       string         `json:"name"`
		Attributes map[string]any `json:"attributes"`
	}

	// Conversation is an interaction with its participants. StartTime is
	// kept as the raw ISO 8601 string the API returns.
	Conversation struct {
		ID           string        `json:"id"`
		StartTime    string        `json:"startTime"`
		EndTime      string        `json:"endTime"`
		Participants []Participant `json:"participants"`
	}

	// Token is an OAuth access token.
	Token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}

	// APIError is returned for any non-2xx response.
	APIError struct {
		Method     string
		URL        string
		StatusCode int
		Message    string
	}

	// userSearchRequest is the body of POST /api/v2/users/search.
	userSearchRequest struct {
		Query    []searchCriteria `json:"query"`
		PageSize int              `json:"pageSize"`
	}

	searchCriteria struct {
		Type   string   `json:"type"`
		Fields []string `json:"fields"`
		Value  string   `json:"value"`
	}

	userSearchResponse struct {
		Total   int    `json:"total"`
		Results []User `json:"results"`
	}

	queueEntityListing struct {
		Total    int     `json:"total"`
		Entities []Queue `json:"entities"`
	}

	// errorBody covers both the platform API and the OAuth error shapes.
	errorBody struct {
		Message          string `json:"message"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
		Description      string `json:"description"`
	}
)

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, msg)
}

// Is lets errors.Is match ErrNotFound and ErrUnauthorized by status code.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	}
	return false
}

func (b errorBody) message() string {
	for _, s := range []string{b.Message, b.ErrorDescription, b.Description, b.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}
