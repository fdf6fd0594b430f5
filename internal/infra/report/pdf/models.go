package pdf

// Column описание колонки таблицы отчета
type Column struct {
	Title string
	Width float64 // мм; 0 - равномерно распределить оставшуюся ширину
	Align string  // "L", "C", "R"; по умолчанию "L"
}

// Document табличный документ (отчеты по загрузке, финансам, no-show, прогнозу)
type Document struct {
	Title    string
	Subtitle string
	Columns  []Column
	Rows     [][]string
	Footer   []string // итоговые строки под таблицей
}

// Confirmation данные для подтверждения бронирования
type Confirmation struct {
	ConfirmationCode string
	HotelName        string
	HotelAddress     string
	RoomNumber       string
	CheckIn          string
	CheckOut         string
	Nights           int
	Guests           int
	Status           string
	TotalAmount      string
	DiscountAmount   string
	FinalAmount      string
	QRPayload        string
}
