// Package api handles incoming HTTP requests, request validation and
// response formatting for the task resource. It translates HTTP concerns
// into single store operations and maps their outcomes back to status
// codes and JSON bodies.
package api
