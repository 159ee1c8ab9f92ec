// Package mocks holds testify mocks of the contracts interfaces shared by the
// service and delivery tests.
package mocks
