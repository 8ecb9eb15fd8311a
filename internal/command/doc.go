// Package command defines the request values the dispatcher executes.
//
// A Request names one of a closed set of commands and carries the movement,
// cursor indices, nested action or host commands that command needs. Requests
// are plain data: they can be built in Go, decoded from JSON by the protocol
// package, or read from a script.
package command
