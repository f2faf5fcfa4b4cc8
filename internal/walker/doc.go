// Package walker traverses a directory tree lazily and in a deterministic
// order, filtering entries through an ignore.Resolver.
//
// # Usage
//
//	for entry, err := range walker.Walk(walker.Options{
//	    Root:              "docs",
//	    MaxDepth:          0, // unbounded
//	    RequireRepository: true,
//	}) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(entry.Path)
//	}
//
// # Guarantees
//
//   - The root itself is never yielded.
//   - Each entry is yielded at most once.
//   - Directory listings are name-sorted, so the order is stable for a fixed
//     filesystem snapshot.
//   - A directory is yielded after everything below it. Renaming a yielded
//     directory therefore never invalidates a path that is still to come.
//   - Excluded directories are pruned; nothing below them is read.
//   - Symlinks are yielded as entries but never followed.
//
// # Errors
//
// A missing or non-directory root, a root outside a repository when one is
// required, or a malformed per-invocation ignore source ends the walk before
// anything is yielded. An unreadable directory yields a models.IOError and
// ends the walk; entries already yielded stay yielded.
package walker
