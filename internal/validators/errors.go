package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNoFileSelected = errors.New("ファイルが選択されていません")
	ErrNotPDF         = errors.New("PDFファイルのみ対応しています")
	ErrEmptyFile      = errors.New("ファイルが空です")
	ErrFileTooLarge   = errors.New("ファイルサイズが大きすぎます")
)

// IsValidationError reports whether err was produced by a failed document
// check, as opposed to a programming error such as [ErrUnsupportedType].
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNoFileSelected) ||
		errors.Is(err, ErrNotPDF) ||
		errors.Is(err, ErrEmptyFile) ||
		errors.Is(err, ErrFileTooLarge)
}
