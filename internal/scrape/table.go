package scrape

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseTable converts the first table of doc into one record per data row, keyed
// by the text of the header row. The header row is the first row of the table;
// cells past the last header are dropped and missing cells are left out.
func ParseTable(doc string) ([]map[string]string, error) {
	d, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	table := d.Find("table").First()
	if table.Length() == 0 {
		return nil, ErrNoTable
	}

	var headers []string
	rows := []map[string]string{}

	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		// rows of nested tables belong to those tables
		if !tr.Closest("table").IsSelection(table) {
			return
		}

		cells := tr.ChildrenFiltered("th, td")
		if cells.Length() == 0 {
			return
		}

		if headers == nil {
			cells.Each(func(_ int, cell *goquery.Selection) {
				headers = append(headers, strings.TrimSpace(cell.Text()))
			})
			return
		}

		row := make(map[string]string, len(headers))
		cells.Each(func(i int, cell *goquery.Selection) {
			if i >= len(headers) {
				return
			}
			row[headers[i]] = strings.TrimSpace(cell.Text())
		})
		rows = append(rows, row)
	})

	return rows, nil
}
