package generate_report

import (
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
	"github.com/m04kA/SMC-HotelReservations/internal/infra/report/pdf"
)

var reportTitles = map[domain.ReportKind]string{
	domain.ReportOccupancy: "Occupancy report",
	domain.ReportFinancial: "Financial report",
	domain.ReportNoShow:    "No-show report",
	domain.ReportForecast:  "Occupancy forecast",
}

// toDocument преобразует отчет в табличный документ для PDF
func toDocument(resp *Response) pdf.Document {
	doc := pdf.Document{
		Title:    fmt.Sprintf("%s: %s", reportTitles[resp.Kind], resp.HotelName),
		Subtitle: fmt.Sprintf("Period %s - %s (check-out date exclusive)", resp.From, resp.To),
		Rows:     make([][]string, 0),
	}

	switch resp.Kind {
	case domain.ReportOccupancy, domain.ReportForecast:
		doc.Columns = []pdf.Column{
			{Title: "Date", Width: 50},
			{Title: "Rooms sold", Align: "R"},
			{Title: "Rooms available", Align: "R"},
			{Title: "Occupancy, %", Align: "R"},
		}
		for _, day := range resp.Occupancy {
			doc.Rows = append(doc.Rows, []string{
				day.Date.String(),
				strconv.Itoa(day.RoomsSold),
				strconv.Itoa(day.RoomsTotal),
				money(day.OccupancyRate),
			})
		}
		doc.Footer = []string{
			fmt.Sprintf("Room nights sold: %d of %d", resp.Summary.RoomNights, resp.Summary.AvailableNights),
			fmt.Sprintf("Average occupancy: %s%%", money(resp.Summary.AverageOccupancy)),
		}

	case domain.ReportFinancial:
		doc.Columns = []pdf.Column{
			{Title: "Date", Width: 50},
			{Title: "Revenue", Align: "R"},
			{Title: "Discounts", Align: "R"},
			{Title: "Net", Align: "R"},
		}
		for _, day := range resp.Financial {
			doc.Rows = append(doc.Rows, []string{
				day.Date.String(),
				money(day.Revenue),
				money(day.Discounts),
				money(day.Net),
			})
		}
		doc.Footer = []string{
			fmt.Sprintf("Revenue: %s", money(resp.Summary.Revenue)),
			fmt.Sprintf("Discounts: %s", money(resp.Summary.Discounts)),
			fmt.Sprintf("Net: %s", money(resp.Summary.Net)),
		}

	case domain.ReportNoShow:
		doc.Columns = []pdf.Column{
			{Title: "Code", Width: 90},
			{Title: "Room"},
			{Title: "Guest", Align: "R"},
			{Title: "Check-in"},
			{Title: "Check-out"},
			{Title: "Lost revenue", Align: "R"},
		}
		for _, entry := range resp.NoShows {
			doc.Rows = append(doc.Rows, []string{
				entry.ConfirmationCode,
				entry.RoomNumber,
				strconv.FormatInt(entry.GuestUserID, 10),
				entry.CheckIn.String(),
				entry.CheckOut.String(),
				money(entry.LostRevenue),
			})
		}
		doc.Footer = []string{
			fmt.Sprintf("No-shows: %d of %d arrivals (%s%%)",
				resp.Summary.NoShowCount, resp.Summary.Arrivals, money(resp.Summary.NoShowRate)),
			fmt.Sprintf("Lost revenue: %s", money(resp.Summary.LostRevenue)),
		}
	}

	return doc
}

// filename имя файла отчета
func filename(resp *Response) string {
	return fmt.Sprintf("%s-report-%d-%s-%s.pdf", resp.Kind, resp.HotelID, resp.From, resp.To)
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
