// Package service implements the business logic for the activities API.
//
// ActivityService exposes the three registry operations: listing the full
// activity mapping, signing a student up, and removing a student. The
// service validates preconditions in a fixed order and translates store
// failures into the sentinel errors defined in errors.go, which handlers
// map onto the HTTP contract.
//
// The service consumes its store through the ActivityStore interface so
// tests can construct fresh seeded instances per case.
package service
