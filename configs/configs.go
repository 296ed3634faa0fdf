package configs

import _ "embed"

// Catalog は、標準で同梱されるチートシートの内容 (YAML) です。
//
//go:embed catalog.yaml
var Catalog []byte
