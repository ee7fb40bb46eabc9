// Package commands contains the operations that change order state. Each
// command is built with a validating constructor and executed by a handler
// that receives its dependencies from the composition root.
package commands
