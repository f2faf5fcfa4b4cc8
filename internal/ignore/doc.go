// Package ignore decides which filesystem entries a walk visits.
//
// Rules use gitignore syntax:
//
//   - blank lines and lines starting with "#" are skipped
//   - "!" re-includes a path excluded by an earlier rule
//   - a trailing "/" restricts a rule to directories
//   - a "/" anywhere else anchors the rule to the directory the rules belong to;
//     without one the rule matches at any depth
//   - "*", "?", "[...]" and "**" are glob operators
//
// Within one Ruleset the last matching rule wins. A Resolver layers several
// rulesets; the first layer that has an opinion decides:
//
//  1. per-invocation sources (later sources override earlier ones)
//  2. the user-level global ignore file
//  3. .gitignore files, from the entry's directory up to the repository root
//  4. .git/info/exclude
//
// Entries no layer matches are visited, except hidden entries (leading ".")
// which are skipped unless hidden entries are enabled or a rule re-includes
// them. The ".git" directory is never visited.
//
// FindRepository implements the boundary guard: a walk that requires a
// repository fails before visiting anything when its root is not inside one.
package ignore
