package epak_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

const provinciaRows = `      <Table diffgr:id="Table1" msdata:rowOrder="0">
        <IdProvincia>1</IdProvincia>
        <Descripcion> Capital  Federal </Descripcion>
      </Table>
      <Table diffgr:id="Table2" msdata:rowOrder="1">
        <IdProvincia>2</IdProvincia>
        <Descripcion>Buenos Aires</Descripcion>
      </Table>
`

func TestGetProvinciasTrimsDescripcion(t *testing.T) {
	t.Parallel()

	var last *http.Request
	cl := newStub(t, serveXML(dataset(provinciaRows), &last))

	provincias, err := cl.GetProvincias(context.Background())
	require.NoError(t, err)
	require.Len(t, provincias, 2)

	// Surrounding whitespace goes, internal whitespace stays.
	require.Equal(t, "1", provincias[0].IdProvincia)
	require.Equal(t, "Capital  Federal", provincias[0].Descripcion)
	require.Equal(t, "Buenos Aires", provincias[1].Descripcion)

	require.Equal(t, "/GetProvincias", last.URL.Path)
	require.Empty(t, last.URL.RawQuery)
}

func TestGetProvinciasEmptyDataset(t *testing.T) {
	t.Parallel()

	cl := newStub(t, serveXML(dataset(""), nil))

	provincias, err := cl.GetProvincias(context.Background())
	require.NoError(t, err)
	require.NotNil(t, provincias)
	require.Len(t, provincias, 0)
}
