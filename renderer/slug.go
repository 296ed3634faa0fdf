package renderer

import "github.com/gosimple/slug"

// Slug は、項目タイトルからページ内アンカー用の識別子を作ります。
// 英数字以外の連続は "-" 1文字にまとめ、"&" は "and" に読み替えます。
func Slug(title string) string {
	return slug.Make(title)
}
