// Package handler is the HTTP layer that sits right after the router.
//
// Handlers bind and validate requests through the validation package,
// call the service layer and shape the JSON response.
package handler
