// Package utils provides type conversion helpers shared by the record mappers
// and the command/HTTP layers that parse identifiers.
package utils
