package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/recsys-data/internal/dataset"
	"github.com/pdiddy/recsys-data/internal/store"
	"github.com/pdiddy/recsys-data/internal/tabular"
	"github.com/pdiddy/recsys-data/pkg/types"
)

const articlesCSV = "article_id,prod_name,colour_group_name\n108775015,Strap top,Black\n108775044,Strap top,White\n"

func articlesOnlyServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/articles.csv" {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, articlesCSV)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestDatasetsFromArgs(t *testing.T) {
	all, err := datasetsFromArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, dataset.All(), all)

	got, err := datasetsFromArgs([]string{"transactions", "Articles", "transactions"})
	require.NoError(t, err)
	assert.Equal(t, []dataset.Dataset{dataset.Transactions, dataset.Articles}, got)

	_, err = datasetsFromArgs([]string{"products"})
	assert.Error(t, err)
}

func TestExtractorRun(t *testing.T) {
	ts := articlesOnlyServer(t)
	dir := t.TempDir()

	st, err := store.Open(filepath.Join(dir, "hm.db"))
	require.NoError(t, err)
	defer st.Close()

	var out, log bytes.Buffer
	ex := &extractor{
		loader: &dataset.Loader{Client: ts.Client(), BaseURL: ts.URL},
		export: types.ExportConfig{OutputDir: filepath.Join(dir, "out"), Format: types.ExportJSON, SQLitePath: "hm.db"},
		store:  st,
		head:   1,
		out:    &out,
		log:    &log,
	}

	failed := ex.run(context.Background(), []dataset.Dataset{dataset.Articles, dataset.Customers})
	assert.Equal(t, 1, failed)

	assert.Contains(t, out.String(), "articles: 2 rows x 3 columns")
	assert.Contains(t, out.String(), "108775015")
	assert.NotContains(t, out.String(), "108775044")
	assert.Contains(t, log.String(), "failed  customers")
	assert.Contains(t, log.String(), "HTTP 404")

	data, err := os.ReadFile(filepath.Join(dir, "out", "articles.json"))
	require.NoError(t, err)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(data, &rows))
	assert.Len(t, rows, 2)

	n, err := st.Count(context.Background(), "articles")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestWriteTableFileCSV(t *testing.T) {
	tbl, err := tabular.ReadString(articlesCSV)
	require.NoError(t, err)

	path, err := writeTableFile(t.TempDir(), dataset.Articles, tbl, "")
	require.NoError(t, err)
	assert.Equal(t, "articles.csv", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, articlesCSV, string(data))
}

func TestWriteTableFileUnsupportedFormat(t *testing.T) {
	tbl, err := tabular.ReadString(articlesCSV)
	require.NoError(t, err)

	_, err = writeTableFile(t.TempDir(), dataset.Articles, tbl, "parquet")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestWritePreview(t *testing.T) {
	tbl, err := tabular.ReadString("id,desc\n1,\n2," + strings.Repeat("x", 40) + "\n")
	require.NoError(t, err)

	var buf bytes.Buffer
	writePreview(&buf, "articles", tbl, 5)
	out := buf.String()

	assert.Contains(t, out, "articles: 2 rows x 2 columns")
	assert.Contains(t, out, "nulls=1")
	assert.Contains(t, out, "null")
	assert.Contains(t, out, strings.Repeat("x", maxCellWidth-3)+"...")
	assert.NotContains(t, out, strings.Repeat("x", maxCellWidth))
}

func TestListDatasets(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listDatasets(&buf, &dataset.Loader{}, false))
	assert.Contains(t, buf.String(), "https://repo.hops.works/dev/jdowling/h-and-m/transactions_train.csv")

	buf.Reset()
	require.NoError(t, listDatasets(&buf, &dataset.Loader{BaseURL: "http://mirror"}, true))
	var entries []datasetEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.Len(t, entries, 3)
	assert.Equal(t, datasetEntry{Name: "customers", URL: "http://mirror/customers.csv"}, entries[1])
}

func TestWriteSchemas(t *testing.T) {
	tbl, err := tabular.ReadString(articlesCSV)
	require.NoError(t, err)
	schemas := []datasetSchema{{Name: "articles", URL: dataset.Articles.URL(), Summary: tabular.Describe(tbl)}}

	var buf bytes.Buffer
	require.NoError(t, writeSchemas(&buf, schemas, "yaml"))
	assert.Contains(t, buf.String(), "rows: 2")
	assert.Contains(t, buf.String(), "type: int64")

	buf.Reset()
	require.NoError(t, writeSchemas(&buf, schemas, "json"))
	assert.Contains(t, buf.String(), `"rows": 2`)
}
