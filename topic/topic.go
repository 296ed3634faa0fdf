package topic

import "slices"

// Language は、スニペットの言語を表します。
// コードフェンスの info string やハイライタのレキサー名としても使います。
type Language string

const (
	LanguageCPP  Language = "cpp"
	LanguageJava Language = "java"
)

// Label は、見出しに使う表示名を返します。
func (l Language) Label() string {
	switch l {
	case LanguageCPP:
		return "C++"
	case LanguageJava:
		return "Java"
	default:
		return string(l)
	}
}

// Topic は、チートシートの1項目（データ構造ひとつ分の比較）を表します。
// スニペットは実行も解析もしない、ただのテキストです。
type Topic struct {
	// Title は、項目の見出しです。カタログ内で一意です。
	Title string `yaml:"title" json:"title"`

	// CPP は、C++ による実装例です。
	CPP string `yaml:"cpp" json:"cpp"`

	// Java は、Java による実装例です。
	Java string `yaml:"java" json:"java"`

	// Differences は、2つの実装の違いを1文ずつ並べたものです。順序は表示順です。
	Differences []string `yaml:"differences" json:"differences"`
}

// Snippet は、指定した言語のスニペットを返します。
func (t *Topic) Snippet(lang Language) string {
	switch lang {
	case LanguageCPP:
		return t.CPP
	case LanguageJava:
		return t.Java
	default:
		return ""
	}
}

// Clone は、Differences も含めた深いコピーを返します。
func (t *Topic) Clone() *Topic {
	if t == nil {
		return nil
	}
	c := *t
	c.Differences = slices.Clone(t.Differences)
	return &c
}
