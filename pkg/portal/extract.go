package portal

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const registeredCoursesTable = "h3 + div.box-inner div.table-responsive > table.table-bordered"

// ExtractBasicLines returns the text of every item in today's class list
func ExtractBasicLines(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	list := doc.Find("ul#ullist")
	if list.Length() == 0 {
		return nil, ErrBasicListMissing
	}

	var lines []string
	list.First().Find("li").Each(func(i int, sel *goquery.Selection) {
		lines = append(lines, strings.TrimSpace(sel.Text()))
	})
	return lines, nil
}

// ExtractDetailedRows returns the td texts of each registered course row.
// The first row is the header and is skipped.
func ExtractDetailedRows(r io.Reader) ([][]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	table := doc.Find(registeredCoursesTable)
	if table.Length() == 0 {
		return nil, ErrDetailedTableMissing
	}

	var rows [][]string
	table.First().Find("tr").Each(func(i int, tr *goquery.Selection) {
		if i == 0 {
			return
		}
		cells := []string{}
		tr.Find("td").Each(func(j int, td *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(td.Text()))
		})
		rows = append(rows, cells)
	})
	return rows, nil
}
