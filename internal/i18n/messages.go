package i18n

import (
	"github.com/nao1215/versioncompare/internal/model"
)

// Message keys. Row labels reuse the model label constants so that a
// writer can pass a row label straight to Translator.T.
const (
	MsgNoLogo      = "no logo"
	MsgNoVersion   = "no version"
	MsgFetchFailed = "could not retrieve version information from %s"

	MsgTitle         = "Version comparison"
	MsgFirstURL      = "First wiki API URL"
	MsgSecondURL     = "Second wiki API URL"
	MsgHideDiff      = "Hide differences"
	MsgHideMatch     = "Hide matches"
	MsgIgnoreVersion = "Ignore versions"
	MsgSubmit        = "Compare"

	MsgDistribution    = "Extension distribution"
	MsgUniqueTo        = "Unique to %s"
	MsgSameExtensions  = "Both wikis have the same set of extensions."
	MsgOnlyDifferences = "%d extension(s) are installed on only one wiki."
)

// EmptySet marks a record that is missing on one side. It is a symbol and
// is the same in every language.
const EmptySet = "∅"

type entry struct {
	key string
	ja  string
}

var entries = []entry{
	{MsgNoLogo, "ロゴなし"},
	{MsgNoVersion, "バージョンなし"},
	{MsgFetchFailed, "%s からバージョン情報を取得できませんでした"},
	{MsgTitle, "バージョン比較"},
	{MsgFirstURL, "1つ目のウィキの API URL"},
	{MsgSecondURL, "2つ目のウィキの API URL"},
	{MsgHideDiff, "差異を隠す"},
	{MsgHideMatch, "一致を隠す"},
	{MsgIgnoreVersion, "バージョンを無視"},
	{MsgSubmit, "比較"},
	{MsgDistribution, "拡張機能の分布"},
	{MsgUniqueTo, "%s のみ"},
	{MsgSameExtensions, "両方のウィキに同じ拡張機能がインストールされています。"},
	{MsgOnlyDifferences, "%d 個の拡張機能が片方のウィキにのみインストールされています。"},
	{model.LabelMediaWiki, "MediaWiki"},
	{model.LabelPHP, "PHP"},
	{model.LabelDatabase, "データベース"},
	{model.LabelTotalExtensions, "拡張機能"},
	{model.LabelUniqueExtensions, "固有の拡張機能"},
	{model.LabelSharedExtensions, "共通の拡張機能"},
}
