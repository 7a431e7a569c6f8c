package shared

import "fmt"

// DbType selects the backend serving the catalog
type DbType string

const (
	DbTypeMemory   DbType = "memory"
	DbTypePostgres DbType = "postgres"
	DbTypeSQLite   DbType = "sqlite"
)

func (t DbType) String() string {
	return string(t)
}

func (t DbType) IsValid() bool {
	switch t {
	case DbTypeMemory, DbTypePostgres, DbTypeSQLite:
		return true
	}
	return false
}

// DbProviderConfig is the JSON configuration accepted by the provider factory
type DbProviderConfig struct {
	DbType       DbType                 `json:"db_type"`
	ExtraDetails map[string]interface{} `json:"extra_details"`
}

// StringDetail returns an optional string entry of ExtraDetails
func (c DbProviderConfig) StringDetail(key string) (string, bool, error) {
	raw, ok := c.ExtraDetails[key]
	if !ok || raw == nil {
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", false, fmt.Errorf("extra_details.%s must be a string, got %T", key, raw)
	}
	return s, s != "", nil
}
