package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"

	"appsearch-srv/internal/search/repository"
	"appsearch-srv/pkg/appsearch"
)

// engineName resolves the engine an index lives in.
func (uc *implUseCase) engineName(index string) string {
	if uc.cfg.EnginePrefix == "" {
		return index
	}
	return uc.cfg.EnginePrefix + "-" + index
}

// generateCacheKey hashes the compiled request so identical searches share an entry.
func (uc *implUseCase) generateCacheKey(engine string, req appsearch.SearchRequest) (string, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return repository.ResponseKey(engine, hex.EncodeToString(sum[:])), nil
}

func (uc *implUseCase) cacheEnabled() bool {
	return uc.cacheRepo != nil && uc.cfg.CacheTTL > 0
}

// toInt64 reads a JSON number. Anything else is 0.
func toInt64(v any) int64 {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
		if f, err := n.Float64(); err == nil {
			return int64(f)
		}
	case float64:
		return int64(n)
	case float32:
		return int64(n)
	case int:
		return int64(n)
	case int64:
		return n
	case string:
		if i, err := strconv.ParseInt(n, 10, 64); err == nil {
			return i
		}
	}
	return 0
}

// toString renders a scalar as text. nil is "".
func toString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case json.Number:
		return s.String()
	default:
		return fmt.Sprint(s)
	}
}

// orEmpty returns "" for missing or null values.
func orEmpty(m map[string]any, key string) any {
	if v, ok := m[key]; ok && v != nil {
		return v
	}
	return ""
}
