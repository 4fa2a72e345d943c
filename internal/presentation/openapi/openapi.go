package openapi

import (
	_ "embed"
)

// Spec OpenAPI仕様ファイル
//
//go:embed openapi.yaml
var Spec []byte
