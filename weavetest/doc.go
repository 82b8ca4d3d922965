// Package weavetest provides mocks and helpers for testing registry
// handlers, decorators and stores without a running host.
package weavetest
