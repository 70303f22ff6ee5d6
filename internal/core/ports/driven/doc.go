// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - StorageProvider: Establishes authenticated storage sessions
//   - Storage: Listing, download, and export against one session
//   - Extractor: Converts downloaded bytes into text fragments
//   - ExtractorRegistry: Maps file kinds to extraction routines
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
