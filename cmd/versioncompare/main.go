// Package main provides the entry point for the versioncompare CLI.
//
// versioncompare fetches the siteinfo of two MediaWiki installations and
// shows their software and extension versions side by side.
//
// Usage:
//
//	versioncompare compare <url1> [url2]
//	versioncompare serve --listen 127.0.0.1:8080
//
// See --help for all available options.
package main

// main is the entry point for versioncompare.
func main() {
	Execute()
}
