package epak_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"oca-epak/epak"
)

const trackingRows = `      <Table diffgr:id="Table1" msdata:rowOrder="0">
        <NumeroEnvio>3836000000001234</NumeroEnvio>
        <Descripcion_Motivo>Visita</Descripcion_Motivo>
        <Desdcripcion_Estado>En poder del distribuidor</Desdcripcion_Estado>
        <SUC>75</SUC>
        <fecha>12/01/2024 10:32:00</fecha>
      </Table>
`

func TestTrackingPiezaMapsRows(t *testing.T) {
	t.Parallel()

	var last *http.Request
	cl := newStub(t, serveXML(dataset(trackingRows), &last))

	eventos, err := cl.TrackingPieza(context.Background(), epak.TrackingPiezaParams{
		Pieza:               "3836000000001234",
		NroDocumentoCliente: "12345678",
		Cuit:                "30-53625919-4",
	})
	require.NoError(t, err)

	require.Equal(t, []epak.TrackingEvento{{
		NumeroEnvio:       "3836000000001234",
		DescripcionMotivo: "Visita",
		DescripcionEstado: "En poder del distribuidor",
		Suc:               "75",
		Fecha:             "12/01/2024 10:32:00",
	}}, eventos)

	require.Equal(t, "/Tracking_Pieza", last.URL.Path)
	require.Equal(t, "3836000000001234", last.URL.Query().Get("Pieza"))
	require.Equal(t, "12345678", last.URL.Query().Get("NroDocumentoCliente"))
	require.Equal(t, "30-53625919-4", last.URL.Query().Get("CUIT"))
}

func TestTrackingPiezaDefaultsOptionalParamsToZero(t *testing.T) {
	t.Parallel()

	var last *http.Request
	cl := newStub(t, serveXML(dataset(""), &last))

	_, err := cl.TrackingPieza(context.Background(), epak.TrackingPiezaParams{Pieza: "XYZ"})
	require.NoError(t, err)

	require.Equal(t, "0", last.URL.Query().Get("NroDocumentoCliente"))
	require.Equal(t, "0", last.URL.Query().Get("CUIT"))
}

func TestTrackingPiezaSerializesUpstreamTypo(t *testing.T) {
	t.Parallel()

	// The upstream schema misspells the estado column and existing consumers
	// key on the misspelled name, so the JSON form must keep it.
	cl := newStub(t, serveXML(dataset(trackingRows), nil))

	eventos, err := cl.TrackingPieza(context.Background(), epak.TrackingPiezaParams{Pieza: "X"})
	require.NoError(t, err)
	require.Len(t, eventos, 1)

	out, err := json.Marshal(eventos[0])
	require.NoError(t, err)
	require.Contains(t, string(out), `"desdcripcion_Estado":"En poder del distribuidor"`)
	require.Contains(t, string(out), `"descripcion_Motivo":"Visita"`)
}
