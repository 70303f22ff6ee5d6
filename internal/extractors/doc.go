// Package extractors provides implementations of the Extractor interface
// for each allow-listed file format. Each extractor knows how to decode one
// format into ordered text fragments.
//
// Extractors are registered with the Registry at startup. Defaults returns
// a registry that is total over the allow-list.
package extractors
