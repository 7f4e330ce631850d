// Package i18n provides the translation service used for user-facing text.
//
// Message catalogs are JSONC files under locale/, embedded in the binary.
// Each file is named after a BCP 47 tag (en.jsonc, de.jsonc) and maps a
// source message, exactly as written in the code, to its translation.
// Catalogs support // and /* */ comments and trailing commas; they are
// cleaned with github.com/tidwall/jsonc before decoding.
//
// Lookup follows gettext conventions: a message missing from the catalog
// is printed as written. Formatting uses golang.org/x/text/message, so
// translated strings take the same fmt verbs as their source.
package i18n
