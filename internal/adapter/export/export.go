// Package export holds the pieces shared by the document renderers.
package export

import (
	"fmt"
	"strconv"
	"time"

	"calcplanner/internal/domain/entities"

	"github.com/gosimple/slug"
)

const (
	fileNamePrefix = "orcamento"
	DateLayout     = "02/01/2006"
	TimeLayout     = "15:04:05"
)

// FileName builds orcamento-<slug>-<yyyymmdd>.<ext>.
func FileName(name string, createdAt time.Time, format entities.ExportFormat) string {
	s := slug.MakeLang(name, "pt")
	base := fileNamePrefix
	if s != "" {
		base += "-" + s
	}
	return fmt.Sprintf("%s-%s.%s", base, createdAt.Format("20060102"), format)
}

// Money renders v with two decimals behind the currency symbol, e.g. €1234.50.
func Money(currency string, v float64) string {
	return currency + strconv.FormatFloat(v, 'f', 2, 64)
}

// Quantity drops trailing zeros: 10 -> "10", 2.5 -> "2.5".
func Quantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// LineName is the label printed for a breakdown line.
func LineName(l entities.BreakdownLine) string {
	if l.MaterialMissing || l.Name == "" {
		return fmt.Sprintf("Material %s (indisponível)", l.MaterialID)
	}
	return l.Name
}
