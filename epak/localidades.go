package epak

import (
	"context"
	"net/url"
)

// GetLocalidadesByProvincia lists the locality names of a province. This is
// the one operation served by the Oep_Track sub-service, whose response is
// not diffgram-wrapped: the root Localidades element holds Provincia rows
// that each carry a Nombre. Callers get the plain names, there is no record
// type for this operation.
func (c *Client) GetLocalidadesByProvincia(ctx context.Context, idProvincia string) (nombres []string, err error) {
	v := url.Values{}
	v.Add("idProvincia", idProvincia)

	r, err := c.invoke(ctx, c.trackingAddr, "GetLocalidadesByProvincia", v)
	if err != nil {
		return
	}

	doc, err := parseDocument(r)
	if err != nil {
		return
	}

	nombres = make([]string, 0)
	root := doc.Root()
	if root.Tag != "Localidades" {
		return
	}

	for i, el := range root.SelectElements("Provincia") {
		var nombre string
		if nombre, err = rowField(el, i, "Nombre"); err != nil {
			return nil, err
		}

		nombres = append(nombres, nombre)
	}

	return
}
