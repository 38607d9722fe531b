package epak

import (
	"context"
	"net/url"
)

type (
	TarifarParams struct {
		// Operativa is the operational code OCA assigns per contract.
		Operativa string
		Cuit      string

		PesoTotal    string
		VolumenTotal string

		CodigoPostalOrigen  string
		CodigoPostalDestino string

		CantidadPaquetes string
		ValorDeclarado   string
	}

	Tarifa struct {
		Tarifador      string `json:"tarifador"`
		Precio         string `json:"precio"`
		IdTipoServicio string `json:"idTiposervicio"`
		Ambito         string `json:"ambito"`
		PlazoEntrega   string `json:"plazoEntrega"`
		Adicional      string `json:"adicional"`
		Total          string `json:"total"`
	}
)

// TarifarEnvioCorporativo quotes a corporate shipment. Every field comes back
// as the string the service emitted, prices included.
func (c *Client) TarifarEnvioCorporativo(ctx context.Context, p TarifarParams) (tarifas []Tarifa, err error) {
	v := url.Values{}
	v.Add("PesoTotal", p.PesoTotal)
	v.Add("VolumenTotal", p.VolumenTotal)
	v.Add("CodigoPostalOrigen", p.CodigoPostalOrigen)
	v.Add("CodigoPostalDestino", p.CodigoPostalDestino)
	v.Add("CantidadPaquetes", p.CantidadPaquetes)
	v.Add("ValorDeclarado", p.ValorDeclarado)
	v.Add("Cuit", p.Cuit)
	v.Add("Operativa", p.Operativa)

	r, err := c.invoke(ctx, c.epakAddr, "Tarifar_Envio_Corporativo", v)
	if err != nil {
		return
	}

	doc, err := parseDocument(r)
	if err != nil {
		return
	}

	tarifas = make([]Tarifa, 0)
	for i, row := range tableRows(doc) {
		var t Tarifa
		if t.Tarifador, err = rowField(row, i, "Tarifador"); err != nil {
			return nil, err
		}
		if t.Precio, err = rowField(row, i, "Precio"); err != nil {
			return nil, err
		}
		if t.IdTipoServicio, err = rowField(row, i, "IdTipoServicio"); err != nil {
			return nil, err
		}
		if t.Ambito, err = rowField(row, i, "Ambito"); err != nil {
			return nil, err
		}
		if t.PlazoEntrega, err = rowField(row, i, "PlazoEntrega"); err != nil {
			return nil, err
		}
		if t.Adicional, err = rowField(row, i, "Adicional"); err != nil {
			return nil, err
		}
		if t.Total, err = rowField(row, i, "Total"); err != nil {
			return nil, err
		}

		tarifas = append(tarifas, t)
	}

	return
}
