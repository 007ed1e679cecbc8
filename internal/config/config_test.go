package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		expectError bool
	}{
		{"development defaults", Config{MongoURI: "mongodb://localhost:27017", MongoDBName: "amity", Env: "development"}, false},
		{"missing mongo URI", Config{MongoDBName: "amity"}, true},
		{"non-mongo scheme", Config{MongoURI: "postgres://localhost:5432", MongoDBName: "amity"}, true},
		{"srv scheme accepted", Config{MongoURI: "mongodb+srv://u:p@cluster0.example.net", MongoDBName: "amity"}, false},
		{"missing database name", Config{MongoURI: "mongodb://localhost:27017"}, true},
		{"production on localhost", Config{MongoURI: "mongodb://localhost:27017", MongoDBName: "amity", Env: "production"}, true},
		{"production on loopback", Config{MongoURI: "mongodb://127.0.0.1:27017", MongoDBName: "amity", Env: "prod"}, true},
		{"production remote with cache", Config{MongoURI: "mongodb+srv://u:p@cluster0.example.net", MongoDBName: "amity", Env: "production", CacheEnabled: true, RedisURL: "redis://cache.internal:6379"}, false},
		{"production cache without redis", Config{MongoURI: "mongodb://db.internal:27017", MongoDBName: "amity", Env: "production", CacheEnabled: true}, true},
		{"production cache disabled without redis", Config{MongoURI: "mongodb://db.internal:27017", MongoDBName: "amity", Env: "production", CacheEnabled: false}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
