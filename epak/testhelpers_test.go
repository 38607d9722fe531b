package epak_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"oca-epak/epak"
)

// datasetEnvelope reproduces the .NET dataset wrapping the service puts
// around tabular results. Row elements are spliced into NewDataSet.
const datasetEnvelope = `<?xml version="1.0" encoding="utf-8"?>
<DataSet xmlns="http://tempuri.org/">
  <xs:schema id="NewDataSet" xmlns:xs="http://www.w3.org/2001/XMLSchema"></xs:schema>
  <diffgr:diffgram xmlns:msdata="urn:schemas-microsoft-com:xml-msdata" xmlns:diffgr="urn:schemas-microsoft-com:xml-diffgram-v1">
    <NewDataSet xmlns="">
%s</NewDataSet>
  </diffgr:diffgram>
</DataSet>`

func dataset(rows string) string {
	return fmt.Sprintf(datasetEnvelope, rows)
}

// newStub spins up a stub OCA service and a client pointed at it for both
// the e-Pak and the Oep_Track addresses.
func newStub(t *testing.T, handler http.HandlerFunc) *epak.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return epak.New(epak.Options{
		BaseURL:         srv.URL,
		TrackingBaseURL: srv.URL,
	})
}

// serveXML answers every request with the given body and records the last
// request seen so tests can inspect path and query.
func serveXML(body string, last **http.Request) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if last != nil {
			*last = r
		}
		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		fmt.Fprint(w, body)
	}
}

// newRecordingServer serves a fixed body and counts hits. Returns the URL.
func newRecordingServer(t *testing.T, hits *int, body string) string {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)

	return srv.URL
}

func serveError(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}
}
