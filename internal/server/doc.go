// Package server serves the version comparison page.
//
// The page is a GET form with two wiki API URLs and three checkboxes,
// followed by either the comparison table or an error paragraph naming
// the wiki that could not be read. Every request runs its own pipeline;
// the second wiki is only requested when the first one succeeded.
package server
