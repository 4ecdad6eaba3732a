// Package api handles incoming HTTP requests, request validation and
// response formatting. It adapts the JSON surface of the contacts API to
// the services in internal/service and translates their errors into the
// {"errors": {...}} envelope.
package api
