package response

import "calcplanner/internal/domain/entities"

type ExportFormatsResponse struct {
	Formats []string `json:"formats"`
	Default string   `json:"default"`
}

func FromExportFormats(formats []entities.ExportFormat) ExportFormatsResponse {
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		out = append(out, string(f))
	}
	return ExportFormatsResponse{Formats: out, Default: string(entities.ExportFormatPDF)}
}
