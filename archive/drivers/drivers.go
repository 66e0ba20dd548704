// Package drivers registers the database/sql drivers supported by package
// archive. Binaries that open an archive import it for its side effects.
package drivers

// Ready does nothing. Calling it documents why the package is imported.
func Ready() {}
