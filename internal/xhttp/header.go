package xhttp

import "net/http"

const ContentType = "Content-Type"

const Authorization = "Authorization"

func SetHeaderRequestID(w http.ResponseWriter, requestID string) {
	const headerName = "X-Request-ID"
	w.Header().Set(headerName, requestID)
}

func SetHeaderContentTypeApplicationJSON(w http.ResponseWriter) {
	const applicationJSON = "application/json"
	w.Header().Set(ContentType, applicationJSON)
}

// BearerToken extracts the token from an Authorization header.
// Returns an empty string when the header is missing or not a bearer scheme.
func BearerToken(r *http.Request) string {
	const prefix = "Bearer "
	auth := r.Header.Get(Authorization)
	if len(auth) <= len(prefix) || auth[:len(prefix)] != prefix {
		return ""
	}
	return auth[len(prefix):]
}
