package acquirer

import "errors"

var (
	// ErrBankUnavailable 銀行に到達できない、または応答を解釈できないエラー
	ErrBankUnavailable = errors.New("acquiring bank unavailable")
)
