package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Adapter class names accepted in the vendors file.
const (
	AdapterGeneric   = "generic"
	AdapterWholecell = "wholecell"
)

// Vendor describes one configured inventory source: its feed endpoint,
// credentials, and adapter class.
type Vendor struct {
	// ID is the vendor identity under which listings are persisted.
	ID string `mapstructure:"id"`
	// Name is the display name for logs and summaries.
	Name string `mapstructure:"name"`
	// Adapter selects the adapter class ("generic" or "wholecell").
	Adapter string `mapstructure:"adapter"`
	// BaseURL is the feed endpoint.
	BaseURL string `mapstructure:"base_url"`
	// AppID and AppSecret form the Basic auth credential pair.
	AppID     string `mapstructure:"app_id"`
	AppSecret string `mapstructure:"app_secret"`
	// Condition is the fixed grade label for wholecell vendors. Ignored
	// by generic vendors, which take grades from the feed items.
	Condition string `mapstructure:"condition"`
	// TimeoutSeconds bounds the feed fetch. Zero means the default (30s).
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// Validate checks that the vendor entry is usable.
func (v Vendor) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("vendor entry missing id")
	}
	if v.BaseURL == "" {
		return fmt.Errorf("vendor %s missing base_url", v.ID)
	}
	switch v.Adapter {
	case AdapterGeneric:
	case AdapterWholecell:
		if v.Condition == "" {
			return fmt.Errorf("wholecell vendor %s missing condition", v.ID)
		}
	default:
		return fmt.Errorf("vendor %s has unknown adapter %q", v.ID, v.Adapter)
	}
	return nil
}

// LoadVendors reads the configured vendor list from a YAML file of the
// form:
//
//	vendors:
//	  - id: vendor-a
//	    adapter: wholecell
//	    base_url: https://feeds.example.com/vendor-a
//	    app_id: ...
//	    app_secret: ...
//	    condition: A-Stock
func LoadVendors(path string) ([]Vendor, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read vendors file %s: %w", path, err)
	}

	var file struct {
		Vendors []Vendor `mapstructure:"vendors"`
	}
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("failed to parse vendors file %s: %w", path, err)
	}

	for _, vendor := range file.Vendors {
		if err := vendor.Validate(); err != nil {
			return nil, err
		}
	}

	return file.Vendors, nil
}
