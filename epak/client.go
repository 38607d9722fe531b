package epak

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"oca-epak/internal/logger"
)

// Production endpoints of the OCA web service. The e-Pak service answers four
// of the five operations, localidades live on the older Oep_Track sub-service.
const (
	EpakServer     = "http://webservice.oca.com.ar/epak_tracking/Oep_TrackEPak.asmx"
	TrackingServer = "http://webservice.oca.com.ar/oep_tracking/Oep_Track.asmx"
)

type (
	Client struct {
		epakAddr     string
		trackingAddr string

		cl *http.Client
	}

	Options struct {
		// BaseURL overrides the e-Pak service address (List_Envios,
		// Tarifar_Envio_Corporativo, GetProvincias, Tracking_Pieza).
		BaseURL string
		// TrackingBaseURL overrides the Oep_Track service address
		// (GetLocalidadesByProvincia).
		TrackingBaseURL string
		// Timeout bounds every call, 10s when zero. The service itself never
		// closes slow connections, so do not disable this lightly.
		Timeout time.Duration

		Transport http.RoundTripper
	}
)

func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = EpakServer
	}
	if opts.TrackingBaseURL == "" {
		opts.TrackingBaseURL = TrackingServer
	}
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Transport == nil {
		opts.Transport = &http.Transport{
			IdleConnTimeout:     30 * time.Second,
			DisableKeepAlives:   false,
			MaxIdleConnsPerHost: 5,
			DisableCompression:  true,
		}
	}

	return &Client{
		epakAddr:     strings.TrimRight(opts.BaseURL, "/"),
		trackingAddr: strings.TrimRight(opts.TrackingBaseURL, "/"),

		cl: &http.Client{
			Timeout:   opts.Timeout,
			Transport: opts.Transport,
		},
	}
}

// invoke performs a GET against one of the .asmx services. Parameters travel
// in the query string, the service ignores request bodies entirely.
func (c *Client) invoke(ctx context.Context, serverAddr, method string, urlParams url.Values) (content []byte, err error) {
	reqUrl := serverAddr + "/" + method
	if len(urlParams) > 0 {
		reqUrl += "?" + urlParams.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqUrl, nil)
	if err != nil {
		return nil, err
	}

	logger.Debug("---> request", req.Method, reqUrl)

	resp, err := c.cl.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	logger.Debug("<--- response", req.Method, reqUrl, "with status", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{
			Url:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Body:       string(bodyBytes),
		}
	}

	return bodyBytes, nil
}
