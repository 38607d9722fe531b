package epak

import (
	"context"
	"strings"
)

type Provincia struct {
	IdProvincia string `json:"idProvincia"`
	Descripcion string `json:"descripcion"`
}

// GetProvincias lists the provinces the service delivers to. Descriptions
// arrive padded with whitespace and are trimmed here; every other field in
// this package is returned exactly as received.
func (c *Client) GetProvincias(ctx context.Context) (provincias []Provincia, err error) {
	r, err := c.invoke(ctx, c.epakAddr, "GetProvincias", nil)
	if err != nil {
		return
	}

	doc, err := parseDocument(r)
	if err != nil {
		return
	}

	provincias = make([]Provincia, 0)
	for i, row := range tableRows(doc) {
		var p Provincia
		if p.IdProvincia, err = rowField(row, i, "IdProvincia"); err != nil {
			return nil, err
		}
		if p.Descripcion, err = rowField(row, i, "Descripcion"); err != nil {
			return nil, err
		}
		p.Descripcion = strings.TrimSpace(p.Descripcion)

		provincias = append(provincias, p)
	}

	return
}
