package epak

import (
	"context"
	"net/url"
)

type (
	ListEnviosParams struct {
		Cuit string
		// Dates use the DD/MM/YYYY format the service expects. Values are
		// passed through verbatim, the service does its own validation.
		FechaDesde string
		FechaHasta string
	}

	Envio struct {
		NroProducto string `json:"nroProducto"`
		NumeroEnvio string `json:"numeroEnvio"`
	}
)

// ListEnvios lists the shipments admitted for a CUIT within a date range.
func (c *Client) ListEnvios(ctx context.Context, p ListEnviosParams) (envios []Envio, err error) {
	v := url.Values{}
	v.Add("Cuit", p.Cuit)
	v.Add("FechaDesde", p.FechaDesde)
	v.Add("FechaHasta", p.FechaHasta)

	r, err := c.invoke(ctx, c.epakAddr, "List_Envios", v)
	if err != nil {
		return
	}

	doc, err := parseDocument(r)
	if err != nil {
		return
	}

	envios = make([]Envio, 0)
	for i, row := range tableRows(doc) {
		var e Envio
		if e.NroProducto, err = rowField(row, i, "NroProducto"); err != nil {
			return nil, err
		}
		if e.NumeroEnvio, err = rowField(row, i, "NumeroEnvio"); err != nil {
			return nil, err
		}

		envios = append(envios, e)
	}

	return
}
