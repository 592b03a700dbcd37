package model

// CompareOptions controls which extension rows a comparison shows.
// The fixed info rows and the summary rows ignore these flags.
type CompareOptions struct {
	// HideDiff omits extension rows whose versions differ.
	HideDiff bool `json:"hideDiff" yaml:"hideDiff"`

	// HideMatch omits extension rows whose versions match.
	HideMatch bool `json:"hideMatch" yaml:"hideMatch"`

	// IgnoreVersion treats every extension installed on both wikis as a
	// match, whatever its version.
	IgnoreVersion bool `json:"ignoreVersion" yaml:"ignoreVersion"`
}
