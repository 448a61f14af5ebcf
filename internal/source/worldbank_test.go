package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"fairdex/domain/table"
	"fairdex/internal/notify"
)

func wbServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestWorldBankFetchCleanRecord(t *testing.T) {
	body := `[
		{"page": 1, "pages": 1, "per_page": 20000, "total": 1},
		[{"country": {"id": "BR", "value": "Brazil"}, "countryiso3code": "BRA", "date": "2020", "value": "15000.5"}]
	]`
	srv := wbServer(t, http.StatusOK, body)
	defer srv.Close()

	wb := NewWorldBank(srv.URL, srv.Client(), notify.Discard{})
	got := wb.Fetch(context.Background(), "NY.GDP.PCAP.CD", nil, table.YearRange{})

	if got.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", got.Len())
	}
	rec := got.Records[0]
	want := table.Record{Country: "Brazil", ISO3: "BRA", Year: 2020, Value: 15000.5}
	if rec != want {
		t.Errorf("got %+v, want %+v", rec, want)
	}
}

func TestWorldBankFetchDropsDirtyRows(t *testing.T) {
	body := `[
		{},
		[
			{"country": {"value": "Brazil"}, "countryiso3code": "BRA", "date": "2020", "value": 100},
			{"country": {"value": "Chile"}, "countryiso3code": "CHL", "date": "2020", "value": null},
			{"country": {"value": "Peru"}, "countryiso3code": "PER", "date": "n.a.", "value": 5},
			{"country": {"value": ""}, "countryiso3code": "ARG", "date": "2020", "value": 7}
		]
	]`
	srv := wbServer(t, http.StatusOK, body)
	defer srv.Close()

	wb := NewWorldBank(srv.URL, srv.Client(), notify.Discard{})
	got := wb.Fetch(context.Background(), "X", nil, table.YearRange{})

	if got.Len() != 1 || got.Records[0].Country != "Brazil" {
		t.Errorf("expected only the Brazil row to survive, got %+v", got.Records)
	}
}

func TestWorldBankFetchMissingSecondElement(t *testing.T) {
	srv := wbServer(t, http.StatusOK, `[{"message": "no data"}]`)
	defer srv.Close()

	collector := notify.NewCollector()
	wb := NewWorldBank(srv.URL, srv.Client(), collector)
	got := wb.Fetch(context.Background(), "X", nil, table.YearRange{})

	if !got.IsEmpty() {
		t.Errorf("expected empty table, got %d records", got.Len())
	}
	if len(collector.Warnings) == 0 {
		t.Error("expected a warning notification")
	}
}

func TestWorldBankFetchHTTPError(t *testing.T) {
	srv := wbServer(t, http.StatusBadGateway, "upstream down")
	defer srv.Close()

	collector := notify.NewCollector()
	wb := NewWorldBank(srv.URL, srv.Client(), collector)
	got := wb.Fetch(context.Background(), "X", nil, table.YearRange{})

	if !got.IsEmpty() {
		t.Errorf("expected empty table on HTTP error, got %d records", got.Len())
	}
	if len(collector.Errors) != 1 {
		t.Errorf("expected exactly one error notification, got %v", collector.Errors)
	}
}

func TestWorldBankFetchMalformedJSON(t *testing.T) {
	srv := wbServer(t, http.StatusOK, `{"not": "an envelope"`)
	defer srv.Close()

	collector := notify.NewCollector()
	wb := NewWorldBank(srv.URL, srv.Client(), collector)
	got := wb.Fetch(context.Background(), "X", nil, table.YearRange{})

	if !got.IsEmpty() {
		t.Error("expected empty table on decode failure")
	}
	if len(collector.Errors) == 0 {
		t.Error("expected an error notification")
	}
}

func TestWorldBankFetchURLShape(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`[{}, []]`))
	}))
	defer srv.Close()

	wb := NewWorldBank(srv.URL, srv.Client(), notify.Discard{})
	wb.Fetch(context.Background(), "SP.POP.TOTL", []string{"BRA", "CHL"}, table.YearRange{From: 2010, To: 2023})

	if gotPath != "/country/BRA;CHL/indicator/SP.POP.TOTL" {
		t.Errorf("unexpected path %s", gotPath)
	}
	for key, want := range map[string]string{
		"format":   "json",
		"date":     "2010:2023",
		"per_page": "20000",
	} {
		if got := gotQuery[key]; len(got) != 1 || got[0] != want {
			t.Errorf("query param %s = %v, want %s", key, got, want)
		}
	}
}
