package renderer

import (
	"sync"
	"time"

	"github.com/sat8bit/cheatsheet/bus"
)

// Renderer は、カタログを何らかの形で表示・出力するコンポーネントが満たすべきインターフェースです。
type Renderer interface {
	// Render は、バスを購読して受信処理を開始します。
	// 受信用のゴルーチンは wg に登録され、バスが閉じられると終了します。
	Render(bus bus.Bus, wg *sync.WaitGroup) error

	// Finalize は、バスの配信がすべて終わった後の最終処理を行います。
	// 例えば、集めた項目をファイルに書き出すなどの処理を想定しています。
	Finalize() error
}

// Page は、ページ全体に関わる表示情報です。
type Page struct {
	// Title は、最初の項目の上に出す見出しです。
	Title string
	// HTMLTitle は、ブラウザのタブに出すタイトルです。
	HTMLTitle string
	Author    string
	AuthorURL string
	// BaseURL は、フィードの各項目のリンクの基点です。
	BaseURL string
	// Date は、生成日時です。ゼロ値なら現在時刻を使います。
	Date time.Time
}

func (p Page) date() time.Time {
	if p.Date.IsZero() {
		return time.Now()
	}
	return p.Date
}

const (
	// DifferencesLabel は、違いの一覧（折りたたみ）の見出しです。
	DifferencesLabel = "Key Differences Explanation"
	// Separator は、項目の区切りです。
	Separator = "---"
)
