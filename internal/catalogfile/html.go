package catalogfile

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/set-night/phonechat/internal/domain"
)

// ReadHTML parses the first <table> of an HTML document, as produced by
// "Save as web page" in spreadsheet tools.
func ReadHTML(r io.Reader) ([]domain.NewCellPhone, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, errors.New("document has no table")
	}

	var rows [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var row []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			row = append(row, strings.Join(strings.Fields(cell.Text()), " "))
		})
		rows = append(rows, row)
	})
	return parseRows(rows)
}
