package gateway

import (
	"net/http"

	"oca-epak/epak"
	"oca-epak/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Gateway exposes the OCA operations as read-only JSON endpoints.
type Gateway struct {
	cl *epak.Client
}

func InitRoutes(app *gin.Engine, cl *epak.Client) {
	logger.Info("Init gateway endpoints...")

	g := &Gateway{cl: cl}

	app.Use(requestID())

	app.GET("/provincias", g.provincias)
	app.GET("/provincias/:id/localidades", g.localidades)
	app.GET("/envios", g.envios)
	app.GET("/tarifas", g.tarifas)
	app.GET("/tracking/:pieza", g.tracking)
}

// requestID tags every request so log lines from concurrent calls can be
// told apart.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New()
		c.Set("request_id", id)
		c.Header("X-Request-Id", id.String())
		c.Next()
	}
}

func (g *Gateway) provincias(c *gin.Context) {
	content, err := g.cl.GetProvincias(c.Request.Context())
	if err != nil {
		abortUpstream(c, err)
		return
	}

	c.JSON(http.StatusOK, content)
}

func (g *Gateway) localidades(c *gin.Context) {
	content, err := g.cl.GetLocalidadesByProvincia(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortUpstream(c, err)
		return
	}

	c.JSON(http.StatusOK, content)
}

func (g *Gateway) envios(c *gin.Context) {
	p := epak.ListEnviosParams{
		Cuit:       c.Query("cuit"),
		FechaDesde: c.Query("desde"),
		FechaHasta: c.Query("hasta"),
	}
	if p.Cuit == "" || p.FechaDesde == "" || p.FechaHasta == "" {
		abortBadRequest(c, "cuit, desde and hasta are required")
		return
	}

	content, err := g.cl.ListEnvios(c.Request.Context(), p)
	if err != nil {
		abortUpstream(c, err)
		return
	}

	c.JSON(http.StatusOK, content)
}

func (g *Gateway) tarifas(c *gin.Context) {
	p := epak.TarifarParams{
		Operativa:           c.Query("operativa"),
		Cuit:                c.Query("cuit"),
		PesoTotal:           c.Query("peso"),
		VolumenTotal:        c.Query("volumen"),
		CodigoPostalOrigen:  c.Query("origen"),
		CodigoPostalDestino: c.Query("destino"),
		CantidadPaquetes:    c.Query("paquetes"),
		ValorDeclarado:      c.Query("valor"),
	}
	if p.Operativa == "" || p.Cuit == "" {
		abortBadRequest(c, "operativa and cuit are required")
		return
	}

	content, err := g.cl.TarifarEnvioCorporativo(c.Request.Context(), p)
	if err != nil {
		abortUpstream(c, err)
		return
	}

	c.JSON(http.StatusOK, content)
}

func (g *Gateway) tracking(c *gin.Context) {
	p := epak.TrackingPiezaParams{
		Pieza:               c.Param("pieza"),
		NroDocumentoCliente: c.Query("documento"),
		Cuit:                c.Query("cuit"),
	}

	content, err := g.cl.TrackingPieza(c.Request.Context(), p)
	if err != nil {
		abortUpstream(c, err)
		return
	}

	c.JSON(http.StatusOK, content)
}

func abortBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func abortUpstream(c *gin.Context, err error) {
	logger.Warning("Upstream call failed:", err)

	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}
