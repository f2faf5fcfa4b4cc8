// Package codec converts arbitrary filenames into canonical names.
//
// A filename is split on its last dot into a stem and an extension. The stem
// is NFD-decomposed and every non-ASCII rune is dropped, which folds accented
// letters to their base letter ("à" becomes "a") and deletes characters that
// have no ASCII decomposition at all. The remaining ASCII is segmented into
// words and re-joined according to a Convention.
//
// Basic usage:
//
//	name, err := codec.Normalize("Rapport Annuel été.PDF", codec.KebabCase)
//	// name == "rapport-annuel-ete.PDF"
//
// Word boundaries are non-alphanumeric bytes, lower-to-upper transitions, the
// end of an upper-case run followed by a lower-case letter ("HTTPServer" is
// "HTTP" + "Server"), and letter/digit transitions.
//
// Normalize is pure: the same input always gives the same output, and running
// it on its own output is a no-op.
package codec
