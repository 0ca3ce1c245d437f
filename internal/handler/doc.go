// Package handler provides the HTTP request handlers for the activities API.
//
// ActivityHandler serves the three registry endpoints. Handlers extract
// parameters from the routed request (path values are percent-decoded by
// the mux), call into the service layer, and translate service errors to
// the wire contract via a handleError switch:
//
//   - unknown activity        → 404 {"detail":"Activity not found"}
//   - duplicate signup        → 400 {"detail":"Student already signed up"}
//   - unregistered removal    → 404 {"detail":"Student not found in activity"}
//
// Handlers never mutate registry state directly; all writes go through the
// service.
package handler
