package export

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/mongo"

	"wayfare/itinerary"
	"wayfare/models"
	"wayfare/utils"
)

// ExportItineraryPDF renders an itinerary as a printable PDF with a QR
// code linking back to its live view.
func ExportItineraryPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itineraryID := ps.ByName("itineraryid")

	it, err := itinerary.FindByID(r.Context(), itineraryID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.Error(w, http.StatusNotFound, "Itinerary not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch itinerary")
		return
	}

	baseURL := os.Getenv("APP_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:4000"
	}
	qrPNG, err := qrcode.Encode(fmt.Sprintf("%s/itineraries/%s", baseURL, it.ItineraryID), qrcode.Medium, 256)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	buf, err := renderPDF(it, utils.GetUsernameFromRequest(r), qrPNG)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=itinerary-"+it.ItineraryID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func renderPDF(it *models.Itinerary, travelerName string, qrPNG []byte) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Trip to %s", it.Destination))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	if travelerName != "" {
		pdf.Cell(0, 10, "Prepared for: "+travelerName)
		pdf.Ln(8)
	}
	pdf.Cell(0, 10, fmt.Sprintf("Dates: %s to %s", it.StartDate, it.EndDate))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Travelers: %d", it.Travelers))
	pdf.Ln(12)

	for _, day := range it.Days {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 10, fmt.Sprintf("Day %d - %s", day.Day, day.Date))
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 11)
		for _, a := range day.Activities {
			line := fmt.Sprintf("  %s: %s", a.Time, a.Name)
			if a.Location != "" {
				line += " @ " + a.Location
			}
			pdf.Cell(0, 8, line)
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 20, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}
