package pdf

import "errors"

var (
	// ErrEmptyColumns возвращается, когда у таблицы нет колонок
	ErrEmptyColumns = errors.New("pdf: table has no columns")

	// ErrRowWidth возвращается, когда число ячеек строки не совпадает с числом колонок
	ErrRowWidth = errors.New("pdf: row width does not match columns")

	// ErrQRCode возвращается при ошибке генерации QR-кода
	ErrQRCode = errors.New("pdf: failed to encode qr code")

	// ErrRender возвращается при ошибке формирования документа
	ErrRender = errors.New("pdf: failed to render document")
)
