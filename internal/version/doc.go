// Package version resolves the human-readable version of the binary.
//
// The resolution chain is:
//  1. the version embedded at build time (ldflags, or the module version
//     recorded by `go install module@version`);
//  2. the output of an external lookup, by default `git latest-version`
//     from git-smart, which only makes sense on a developer checkout;
//  3. the literal "<unknown>".
//
// Probing never fails: every error along the chain degrades to the next
// step and is only reported through the debug logger.
package version
