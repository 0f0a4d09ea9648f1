package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	es "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

const requestTimeout = 30 * time.Second

// ElasticsearchTarget bulk-indexes rows as documents; a "table" is an index.
type ElasticsearchTarget struct {
	address string
	client  *es.Client
}

func NewElasticsearchTarget(dsn string) *ElasticsearchTarget {
	return &ElasticsearchTarget{address: normalizeURL(dsn)}
}

func (t *ElasticsearchTarget) Connect() error {
	client, err := es.NewClient(es.Config{Addresses: []string{t.address}})
	if err != nil {
		return fmt.Errorf("failed to create elasticsearch client: %w", err)
	}
	t.client = client
	_, err = t.ServerVersion()
	return err
}

func (t *ElasticsearchTarget) Close() error { return nil }

func (t *ElasticsearchTarget) ServerVersion() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	res, err := esapi.InfoRequest{}.Do(ctx, t.client)
	if err != nil {
		return "", fmt.Errorf("elasticsearch ping failed: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return "", fmt.Errorf("elasticsearch ping failed: %s", res.String())
	}

	var root struct {
		Version struct {
			Number string `json:"number"`
		} `json:"version"`
	}
	if err := json.NewDecoder(res.Body).Decode(&root); err != nil {
		return "", err
	}
	return root.Version.Number, nil
}

func (t *ElasticsearchTarget) CreateTableIfNotExists(tableName string, columns []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	res, err := esapi.IndicesCreateRequest{Index: toIndexName(tableName)}.Do(ctx, t.client)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if !res.IsError() {
		return nil
	}
	body := res.String()
	if res.StatusCode == 400 && strings.Contains(body, "resource_already_exists_exception") {
		return nil
	}
	return fmt.Errorf("elasticsearch create index failed: %s", body)
}

func (t *ElasticsearchTarget) TruncateTable(tableName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	req := esapi.DeleteByQueryRequest{
		Index: []string{toIndexName(tableName)},
		Body:  strings.NewReader(`{"query":{"match_all":{}}}`),
	}
	res, err := req.Do(ctx, t.client)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("elasticsearch truncate failed: %s", res.String())
	}
	return nil
}

func (t *ElasticsearchTarget) InsertBatch(tableName string, columns []string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	indexName := toIndexName(tableName)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, row := range rows {
		if err := enc.Encode(map[string]any{"index": map[string]string{"_index": indexName}}); err != nil {
			return err
		}
		doc := make(map[string]string, len(columns))
		for i, col := range columns {
			doc[col] = row[i]
		}
		if err := enc.Encode(doc); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	res, err := esapi.BulkRequest{Body: &buf}.Do(ctx, t.client)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("elasticsearch bulk insert failed: %s", res.String())
	}

	var bulkResp struct {
		Errors bool `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&bulkResp); err != nil {
		return fmt.Errorf("decode bulk response: %w", err)
	}
	if bulkResp.Errors {
		return fmt.Errorf("elasticsearch bulk insert returned errors")
	}
	return nil
}

func normalizeURL(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return "http://localhost:9200"
	}
	if strings.HasPrefix(dsn, "http://") || strings.HasPrefix(dsn, "https://") {
		return strings.TrimRight(dsn, "/")
	}
	return "http://" + strings.TrimRight(dsn, "/")
}

func toIndexName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
