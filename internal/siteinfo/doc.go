// Package siteinfo retrieves a wiki's siteinfo metadata and normalizes it
// into a model.SiteInfo.
//
// A fetch is a single GET of
//
//	<base>?action=query&meta=siteinfo&siprop=general|extensions|skins&format=json
//
// followed by Normalize, which validates that query.general and
// query.extensions exist and copies the known properties into typed fields.
// Failures are reported with three sentinel errors so callers can use
// errors.Is:
//
//   - ErrUnreachable: the URL could not be requested or did not answer 200
//   - ErrInvalidJSON: the body is not JSON
//   - ErrMissingFields: the JSON lacks query.general or query.extensions
//
// Normalize can be used on its own for payloads obtained elsewhere.
package siteinfo
