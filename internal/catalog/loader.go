package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/CrossBot_Go/internal/domain"
	"github.com/osse101/CrossBot_Go/internal/utils"
	"github.com/osse101/CrossBot_Go/internal/validation"
)

//go:embed items.schema.json
var itemsSchema []byte

// ErrInvalidConfig is returned for catalog files that parse but make no sense
var ErrInvalidConfig = errors.New("invalid item configuration")

var itemKeyPattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// Config is the JSON catalog file
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`
	Items       []Def  `json:"items"`
}

// Def is one item entry. Either Key or Name may be omitted; the missing
// one is derived from the other.
type Def struct {
	Key       string  `json:"key"`
	Name      string  `json:"name"`
	Emoji     string  `json:"emoji"`
	Droppable bool    `json:"droppable"`
	Rarity    float64 `json:"rarity"`
	IsHat     bool    `json:"is_hat"`
}

// Loader reads and validates item catalog files
type Loader interface {
	Load(path string) (*Config, error)
	Parse(path string, data []byte) (*Config, error)
	Validate(config *Config) error
}

type loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader with the embedded items schema registered
func NewLoader() (Loader, error) {
	v := validation.NewSchemaValidator()
	if err := v.Register(ItemsSchemaName, itemsSchema); err != nil {
		return nil, err
	}
	return &loader{schemaValidator: v}, nil
}

// Load reads, schema-checks, normalizes and validates a catalog file
func (l *loader) Load(path string) (*Config, error) {
	data, err := utils.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return l.Parse(path, data)
}

// Parse is Load on bytes already read; path is only used in error messages
func (l *loader) Parse(path string, data []byte) (*Config, error) {
	if err := l.schemaValidator.Validate(ItemsSchemaName, data); err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgSchemaInvalid, path, err)
	}

	var config Config
	if err := utils.DecodeJSON(path, data, &config); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseConfigFailed, err)
	}

	normalize(&config)
	if err := l.Validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks keys are unique and droppable items can actually drop
func (l *loader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	seen := make(map[string]bool, len(config.Items))
	for i, def := range config.Items {
		if def.Key == "" {
			return fmt.Errorf(ErrFmtItemMissingKey, ErrInvalidConfig, i)
		}
		if !itemKeyPattern.MatchString(def.Key) {
			return fmt.Errorf(ErrFmtItemInvalidKey, ErrInvalidConfig, def.Key)
		}
		if seen[def.Key] {
			return fmt.Errorf(ErrFmtItemDuplicateKey, ErrInvalidConfig, def.Key)
		}
		seen[def.Key] = true

		if def.Droppable && def.Rarity <= 0 {
			return fmt.Errorf(ErrFmtItemDroppableNoRare, ErrInvalidConfig, def.Key)
		}
	}
	return nil
}

// normalize fills in derived keys and display names
func normalize(config *Config) {
	title := cases.Title(language.English)
	for i := range config.Items {
		def := &config.Items[i]
		def.Name = strings.TrimSpace(def.Name)
		if def.Key == "" && def.Name != "" {
			def.Key = KeyFromName(def.Name)
		}
		if def.Name == "" && def.Key != "" {
			def.Name = title.String(strings.ReplaceAll(def.Key, "_", " "))
		}
	}
}

// KeyFromName turns a display name into an item key: "Top Hat!" -> "top_hat"
func KeyFromName(name string) string {
	return strings.ReplaceAll(slug.Make(name), "-", "_")
}

// DomainItems converts the definitions to domain items
func (c *Config) DomainItems() []domain.Item {
	items := make([]domain.Item, len(c.Items))
	for i, def := range c.Items {
		items[i] = domain.Item{
			Key:       def.Key,
			Name:      def.Name,
			Emoji:     def.Emoji,
			Droppable: def.Droppable,
			Rarity:    def.Rarity,
			IsHat:     def.IsHat,
		}
	}
	return items
}
