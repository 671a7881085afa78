package repository

import "fmt"

// KeyPrefix namespaces cached engine responses.
const KeyPrefix = "appsearch:search"

// ResponseKey builds the cache key of one request against engine.
func ResponseKey(engine, requestHash string) string {
	return fmt.Sprintf("%s:%s:%s", KeyPrefix, engine, requestHash)
}

// EnginePattern matches every cached response of engine.
func EnginePattern(engine string) string {
	return fmt.Sprintf("%s:%s:*", KeyPrefix, engine)
}
