package backend

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"time"

	"guardianclima.app/internal/ports"
	"guardianclima.app/pkg/errors"
)

// historyDateLayout is the timestamp format of /api/v1/history
const historyDateLayout = "2006-01-02 15:04:05"

var outfitDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

type messageResponse struct {
	Message     string `json:"mensaje"`
	AccessToken string `json:"access_token"`
}

func (r messageResponse) toPort() *ports.MessageResponse {
	return &ports.MessageResponse{Message: r.Message, AccessToken: r.AccessToken}
}

type adviceResponse struct {
	Advice      string `json:"consejo"`
	AccessToken string `json:"access_token"`
}

func (r adviceResponse) toPort() *ports.AdviceResponse {
	return &ports.AdviceResponse{Advice: r.Advice, AccessToken: r.AccessToken}
}

// weatherResponse is the OpenWeatherMap document relayed by the API
type weatherResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	AccessToken string `json:"access_token"`
}

func (r weatherResponse) toPort() *ports.WeatherPayload {
	p := &ports.WeatherPayload{
		Name:        r.Name,
		Country:     r.Sys.Country,
		TempC:       r.Main.Temp,
		FeelsLikeC:  r.Main.FeelsLike,
		HumidityPct: r.Main.Humidity,
		AccessToken: r.AccessToken,
	}
	if len(r.Weather) > 0 {
		p.Description = r.Weather[0].Description
		p.IconCode = r.Weather[0].Icon
	}
	return p
}

type historyRecord struct {
	City        string  `json:"ciudad"`
	Temperature float64 `json:"temperatura"`
	Description string  `json:"descripcion"`
	Date        string  `json:"fecha"`
}

// toPort keeps records with an unreadable date, leaving Date zero
func (r historyRecord) toPort() ports.HistoryRecord {
	date, _ := time.ParseInLocation(historyDateLayout, r.Date, time.UTC)
	return ports.HistoryRecord{
		City:        r.City,
		TempC:       r.Temperature,
		Description: r.Description,
		Date:        date,
	}
}

type outfitRecord struct {
	City   string `json:"city"`
	Advice string `json:"advice"`
	Date   string `json:"date"`
}

func (r outfitRecord) toPort() ports.OutfitRecord {
	return ports.OutfitRecord{City: r.City, Advice: r.Advice, Date: parseOutfitDate(r.Date)}
}

func parseOutfitDate(s string) time.Time {
	for _, layout := range outfitDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t
		}
	}
	return time.Time{}
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// outfitForm encodes the images as repeated "imagenes" parts followed by "ciudad"
func outfitForm(params ports.OutfitAdviceParams) (io.Reader, string, error) {
	if len(params.Images) == 0 {
		return nil, "", errors.NewValidationError("at least one image is required")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, img := range params.Images {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="imagenes"; filename="%s"`, quoteEscaper.Replace(img.Name)))
		contentType := img.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", errors.NewValidationError(fmt.Sprintf("failed to encode image %s: %v", img.Name, err))
		}
		if _, err := part.Write(img.Data); err != nil {
			return nil, "", errors.NewValidationError(fmt.Sprintf("failed to encode image %s: %v", img.Name, err))
		}
	}

	if err := w.WriteField("ciudad", params.City); err != nil {
		return nil, "", errors.NewValidationError(fmt.Sprintf("failed to encode city: %v", err))
	}
	if err := w.Close(); err != nil {
		return nil, "", errors.NewValidationError(fmt.Sprintf("failed to encode form: %v", err))
	}

	return &buf, w.FormDataContentType(), nil
}
