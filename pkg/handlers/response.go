package handlers

import "net/http"

// Response is the structured result each handler returns to the invoking
// scheduler on success. Failures are returned as plain errors so the
// scheduler's own alerting path fires.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

func ok(body string) Response {
	return Response{StatusCode: http.StatusOK, Body: body}
}
