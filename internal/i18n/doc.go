// Package i18n holds the message catalog for every user-visible string
// that is not data from a wiki.
//
// Messages are keyed by their English text. English and Japanese are
// bundled; any other requested language falls back to English. Extension
// names are never translated.
package i18n
