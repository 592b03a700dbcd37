// Package pipeline runs a comparison as a sequence of steps.
//
// A default comparison is four steps: fetch the first wiki, fetch the
// second wiki, compare, render. Each step receives the Job built up by
// the previous steps. Execution is strictly sequential and stops at the
// first failing step, so a wiki that cannot be read means the next one
// is never requested.
//
// Every HTTP request handled by the server and every CLI invocation
// builds its own Job, so no state is shared between comparisons.
package pipeline
