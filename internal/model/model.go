// Package model holds the Todo entity together with the request and
// response shapes of the HTTP API.
package model
