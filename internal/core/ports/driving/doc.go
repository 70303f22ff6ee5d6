// Package driving defines the interfaces through which callers drive the
// core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// Core services implement them; the CLI (or any embedding application)
// depends on them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, service, or extractor package
package driving
