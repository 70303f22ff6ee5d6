// Package services contains the core business logic, free of transport and
// storage concerns. The loader service turns a load request into records by
// resolving a session, expanding the target into file paths, and dispatching
// each file to its extraction routine. All dependencies arrive as driven
// ports, so the package is testable with in-memory fakes.
package services
