package model

// Wiki-level property names as they appear in the siteinfo "general" object.
const (
	PropLogo       = "logo"
	PropWikiID     = "wikiid"
	PropServerName = "servername"
	PropGenerator  = "generator"
	PropGitHash    = "git-hash"
	PropPHPVersion = "phpversion"
	PropPHPSAPI    = "phpsapi"
	PropDBType     = "dbtype"
	PropDBVersion  = "dbversion"
)

// Extension-level property names as they appear in each siteinfo extension object.
const (
	PropVersion    = "version"
	PropVCSSystem  = "vcs-system"
	PropVCSVersion = "vcs-version"
	PropVCSDate    = "vcs-date"
)

// WikiProperties returns the wiki-level properties copied from "general",
// in the order they are normalized.
func WikiProperties() []string {
	return []string{
		PropLogo,
		PropWikiID,
		PropServerName,
		PropGenerator,
		PropGitHash,
		PropPHPVersion,
		PropPHPSAPI,
		PropDBType,
		PropDBVersion,
	}
}

// ExtensionProperties returns the per-extension properties, in the order
// they are displayed in an extension row.
func ExtensionProperties() []string {
	return []string{PropVersion, PropVCSSystem, PropVCSVersion, PropVCSDate}
}

// PropertyBag is a read-only view over a record's named properties.
// Property reports the value and whether the property is present at all;
// a present property may still be the empty string.
type PropertyBag interface {
	Property(name string) (string, bool)
}

// SiteInfo is the canonical record for one wiki.
//
// It is created once per fetched URL. The only field that changes after
// normalization is UniqueExtensionCount, which the comparator sets.
type SiteInfo struct {
	// SourceURL is the API endpoint the record was fetched from.
	SourceURL string `json:"sourceUrl,omitempty"`

	Logo       string `json:"logo"`
	WikiID     string `json:"wikiId"`
	ServerName string `json:"serverName"`
	Generator  string `json:"generator"`
	GitHash    string `json:"gitHash"`
	PHPVersion string `json:"phpVersion"`
	PHPSAPI    string `json:"phpSapi"`
	DBType     string `json:"dbType"`
	DBVersion  string `json:"dbVersion"`

	// Extensions maps extension name to its metadata.
	Extensions map[string]ExtensionInfo `json:"extensions"`

	// ExtensionCount is len(Extensions) at normalization time.
	ExtensionCount int `json:"extensionCount"`

	// UniqueExtensionCount is the number of extensions installed on this
	// wiki but not on the wiki it was compared with. Zero until compared.
	UniqueExtensionCount int `json:"uniqueExtensionCount"`
}

// Property implements PropertyBag. Every wiki-level property is present,
// possibly as the empty string; unknown names are absent.
func (s *SiteInfo) Property(name string) (string, bool) {
	switch name {
	case PropLogo:
		return s.Logo, true
	case PropWikiID:
		return s.WikiID, true
	case PropServerName:
		return s.ServerName, true
	case PropGenerator:
		return s.Generator, true
	case PropGitHash:
		return s.GitHash, true
	case PropPHPVersion:
		return s.PHPVersion, true
	case PropPHPSAPI:
		return s.PHPSAPI, true
	case PropDBType:
		return s.DBType, true
	case PropDBVersion:
		return s.DBVersion, true
	default:
		return "", false
	}
}

// SetProperty stores a wiki-level property by its wire name.
// It returns false for names that are not wiki-level properties.
func (s *SiteInfo) SetProperty(name, value string) bool {
	switch name {
	case PropLogo:
		s.Logo = value
	case PropWikiID:
		s.WikiID = value
	case PropServerName:
		s.ServerName = value
	case PropGenerator:
		s.Generator = value
	case PropGitHash:
		s.GitHash = value
	case PropPHPVersion:
		s.PHPVersion = value
	case PropPHPSAPI:
		s.PHPSAPI = value
	case PropDBType:
		s.DBType = value
	case PropDBVersion:
		s.DBVersion = value
	default:
		return false
	}
	return true
}

// Extension returns the named extension and whether it is installed.
func (s *SiteInfo) Extension(name string) (ExtensionInfo, bool) {
	ext, ok := s.Extensions[name]
	return ext, ok
}

// ExtensionNames returns the extension names in map order.
// Callers that need a stable order must sort the result.
func (s *SiteInfo) ExtensionNames() []string {
	names := make([]string, 0, len(s.Extensions))
	for name := range s.Extensions {
		names = append(names, name)
	}
	return names
}

// SharedExtensionCount returns ExtensionCount - UniqueExtensionCount.
// It is only meaningful after a comparison has set UniqueExtensionCount.
func (s *SiteInfo) SharedExtensionCount() int {
	return s.ExtensionCount - s.UniqueExtensionCount
}

// ExtensionInfo is the metadata reported for one installed extension.
// A nil field means the property was not present in the response, which
// is different from a present empty string.
type ExtensionInfo struct {
	Version    *string `json:"version,omitempty"`
	VCSSystem  *string `json:"vcsSystem,omitempty"`
	VCSVersion *string `json:"vcsVersion,omitempty"`
	VCSDate    *string `json:"vcsDate,omitempty"`
}

// Property implements PropertyBag.
func (e ExtensionInfo) Property(name string) (string, bool) {
	var p *string
	switch name {
	case PropVersion:
		p = e.Version
	case PropVCSSystem:
		p = e.VCSSystem
	case PropVCSVersion:
		p = e.VCSVersion
	case PropVCSDate:
		p = e.VCSDate
	}
	if p == nil {
		return "", false
	}
	return *p, true
}

// SetProperty stores an extension property by its wire name.
// It returns false for names that are not extension properties.
func (e *ExtensionInfo) SetProperty(name, value string) bool {
	v := value
	switch name {
	case PropVersion:
		e.Version = &v
	case PropVCSSystem:
		e.VCSSystem = &v
	case PropVCSVersion:
		e.VCSVersion = &v
	case PropVCSDate:
		e.VCSDate = &v
	default:
		return false
	}
	return true
}

// NewExtensionInfo builds an ExtensionInfo from wire-named properties.
// Unknown names are ignored.
func NewExtensionInfo(props map[string]string) ExtensionInfo {
	var e ExtensionInfo
	for name, value := range props {
		e.SetProperty(name, value)
	}
	return e
}
