package epak

import (
	"context"
	"net/url"
)

type (
	TrackingPiezaParams struct {
		// Pieza is the piece/tracking number. Required.
		Pieza string
		// NroDocumentoCliente and Cuit are optional, the service wants the
		// literal value 0 when they do not apply.
		NroDocumentoCliente string
		Cuit                string
	}

	TrackingEvento struct {
		NumeroEnvio       string `json:"numeroEnvio"`
		DescripcionMotivo string `json:"descripcion_Motivo"`
		// The json tag reproduces the column name of the upstream schema,
		// typo included. Consumers of serialized records depend on it.
		DescripcionEstado string `json:"desdcripcion_Estado"`
		Suc               string `json:"suc"`
		Fecha             string `json:"fecha"`
	}
)

// TrackingPieza returns the tracking history of a piece, most recent state
// included, one event per row.
func (c *Client) TrackingPieza(ctx context.Context, p TrackingPiezaParams) (eventos []TrackingEvento, err error) {
	if p.NroDocumentoCliente == "" {
		p.NroDocumentoCliente = "0"
	}
	if p.Cuit == "" {
		p.Cuit = "0"
	}

	v := url.Values{}
	v.Add("Pieza", p.Pieza)
	v.Add("NroDocumentoCliente", p.NroDocumentoCliente)
	v.Add("CUIT", p.Cuit)

	r, err := c.invoke(ctx, c.epakAddr, "Tracking_Pieza", v)
	if err != nil {
		return
	}

	doc, err := parseDocument(r)
	if err != nil {
		return
	}

	eventos = make([]TrackingEvento, 0)
	for i, row := range tableRows(doc) {
		var e TrackingEvento
		if e.NumeroEnvio, err = rowField(row, i, "NumeroEnvio"); err != nil {
			return nil, err
		}
		if e.DescripcionMotivo, err = rowField(row, i, "Descripcion_Motivo"); err != nil {
			return nil, err
		}
		if e.DescripcionEstado, err = rowField(row, i, "Desdcripcion_Estado"); err != nil {
			return nil, err
		}
		if e.Suc, err = rowField(row, i, "SUC"); err != nil {
			return nil, err
		}
		if e.Fecha, err = rowField(row, i, "fecha"); err != nil {
			return nil, err
		}

		eventos = append(eventos, e)
	}

	return
}
