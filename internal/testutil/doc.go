// Package testutil contains helper builders used across tests to reduce
// boilerplate when constructing images and run contexts. These helpers are
// intentionally minimal and not intended for production usage.
package testutil
