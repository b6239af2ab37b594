package httpadapter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"royale-campaigns/internal/core/domain"
	"royale-campaigns/internal/core/pricing"
)

var exportHeader = []string{
	"ID", "Full Name", "Brand Name", "Email", "Phone",
	"Goals", "Ad Types", "Total Price", "Payment Status", "Payment Reference", "Created At",
}

func exportRow(c domain.Campaign) []string {
	return []string{
		c.ID,
		c.FullName,
		c.BrandName,
		c.Email,
		c.Phone,
		joinGoals(c.CampaignGoals),
		joinAdTypes(c.AdvertisementTypes),
		pricing.FormatCurrency(c.TotalPrice),
		string(c.PaymentStatus),
		c.PaymentReference,
		c.CreatedAt.Format(time.RFC3339),
	}
}

// handleCampaignExportCSV streams the filtered campaign list as CSV. The
// same status/q query parameters as the list endpoint apply.
func (h *Handler) handleCampaignExportCSV(w http.ResponseWriter, r *http.Request) {
	filter, ok := campaignFilterFromQuery(w, r)
	if !ok {
		return
	}
	campaigns, err := h.campaigns.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="campaigns.csv"`)

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		h.logger.Error("csv write error", slog.Any("error", err))
		return
	}
	for _, c := range campaigns {
		if err := cw.Write(exportRow(c)); err != nil {
			h.logger.Error("csv write error", slog.Any("error", err))
			return
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		h.logger.Error("csv flush error", slog.Any("error", err))
	}
}

// handleCampaignExportXLSX renders the filtered campaign list as a
// spreadsheet and streams it as a download.
func (h *Handler) handleCampaignExportXLSX(w http.ResponseWriter, r *http.Request) {
	filter, ok := campaignFilterFromQuery(w, r)
	if !ok {
		return
	}
	campaigns, err := h.campaigns.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, err)
		return
	}

	f := excelize.NewFile()
	const sheet = "Campaigns"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		h.writeError(w, err)
		return
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	for i, col := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, col)
	}
	lastCell, _ := excelize.CoordinatesToCellName(len(exportHeader), 1)
	_ = f.SetCellStyle(sheet, "A1", lastCell, headerStyle)

	for rowIdx, c := range campaigns {
		for colIdx, value := range exportRow(c) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			_ = f.SetCellValue(sheet, cell, value)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="campaigns-%s.xlsx"`,
		time.Now().Format("2006-01-02")))
	if err := f.Write(w); err != nil {
		h.logger.Error("xlsx write error", slog.Any("error", err))
	}
}

func joinGoals(goals []domain.CampaignGoal) string {
	parts := make([]string, len(goals))
	for i, g := range goals {
		parts[i] = string(g)
	}
	return strings.Join(parts, ";")
}

func joinAdTypes(types []domain.AdvertisementType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ";")
}
