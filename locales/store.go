package locales

import (
	"embed"
	"fmt"
	"path"
	"slices"
	"strings"
	"sync"
	_ "time/tzdata"

	"github.com/TwiN/deepmerge"
	"github.com/hashicorp/golang-lru/simplelru"
	"github.com/mitchellh/mapstructure"
	"github.com/mohae/deepcopy"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/tidepool-org/fakegen/config"
	errs "github.com/tidepool-org/fakegen/errors"
)

const (
	DefaultLocale = "en_US"

	defaultCacheSize = 16

	baseName = "base"
	dataDir  = "data"
)

//go:embed data/*.yaml
var files embed.FS

// Store loads locale data from the embedded files and keeps the merged results in an LRU cache
type Store struct {
	base   map[string]interface{}
	lru    *simplelru.LRU
	mu     *sync.Mutex
	logger *zap.SugaredLogger
}

func NewStore(cfg *config.Config, logger *zap.SugaredLogger) (*Store, error) {
	size := cfg.LocaleCacheSize
	if size <= 0 {
		size = defaultCacheSize
	}

	var onEvict simplelru.EvictCallback
	lru, err := simplelru.NewLRU(size, onEvict)
	if err != nil {
		return nil, err
	}

	base, err := readFile(baseName)
	if err != nil {
		return nil, err
	}

	return &Store{
		base:   base,
		lru:    lru,
		mu:     &sync.Mutex{},
		logger: logger,
	}, nil
}

// Load returns the merged data of locale. The returned data is shared and must not be modified.
func (s *Store) Load(locale string) (*Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d, ok := s.lru.Get(locale); ok {
		return d.(*Data), nil
	}

	if !slices.Contains(Available(), locale) {
		return nil, fmt.Errorf("%w: %q", errs.InvalidLocale, locale)
	}

	overlay, err := readFile(locale)
	if err != nil {
		return nil, err
	}

	merged := deepcopy.Copy(s.base).(map[string]interface{})
	err = deepmerge.DeepMerge(merged, overlay, deepmerge.Config{
		PreventMultipleDefinitionsOfKeysWithPrimitiveValue: false,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to merge locale %s: %w", locale, err)
	}

	data := &Data{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      data,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(merged); err != nil {
		return nil, fmt.Errorf("unable to decode locale %s: %w", locale, err)
	}

	s.logger.Debugw("loaded locale data", "locale", locale)
	_ = s.lru.Add(locale, data)
	return data, nil
}

// Available returns the sorted list of locales with embedded data
func Available() []string {
	entries, err := files.ReadDir(dataDir)
	if err != nil {
		return nil
	}

	var result []string
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		if name != baseName {
			result = append(result, name)
		}
	}
	slices.Sort(result)
	return result
}

func readFile(name string) (map[string]interface{}, error) {
	content, err := files.ReadFile(path.Join(dataDir, name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", errs.InvalidLocale, name)
	}

	result := make(map[string]interface{})
	if err := yaml.Unmarshal(content, &result); err != nil {
		return nil, fmt.Errorf("unable to parse locale data %s: %w", name, err)
	}
	return result, nil
}
