package epak

import (
	"errors"

	"github.com/beevik/etree"
)

// parseDocument reads a response body into an XML tree.
func parseDocument(body []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, &ParseError{Err: err}
	}
	if doc.Root() == nil {
		return nil, &ParseError{Err: errors.New("document has no root element")}
	}

	return doc, nil
}

// tableRows walks the .NET dataset wrapping the service puts around tabular
// results (DataSet > diffgram > NewDataSet > Table) and returns the row
// elements. Empty result sets are serialized with the inner wrappers absent,
// so a missing segment means zero rows, not an error. Namespace prefixes on
// the wrappers (diffgr:diffgram) are ignored when matching.
func tableRows(doc *etree.Document) []*etree.Element {
	dataSet := doc.Root()
	if dataSet == nil || dataSet.Tag != "DataSet" {
		return nil
	}

	diffgram := dataSet.SelectElement("diffgram")
	if diffgram == nil {
		return nil
	}

	newDataSet := diffgram.SelectElement("NewDataSet")
	if newDataSet == nil {
		return nil
	}

	return newDataSet.SelectElements("Table")
}

// rowField reads the text of the first child element with the given tag.
func rowField(row *etree.Element, idx int, field string) (string, error) {
	el := row.SelectElement(field)
	if el == nil {
		return "", &ShapeError{Row: idx, Field: field}
	}

	return el.Text(), nil
}
