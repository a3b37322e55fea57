package menu

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/mess-service/internal/domain"
)

const cacheKey = "mess:menu:v1"

// nonVegKeywords is the denylist used to classify items; any case-insensitive
// substring match on name+extras marks the item non-vegetarian.
var nonVegKeywords = []string{"chicken", "egg", "fish", "mutton", "seekh", "kebab", "non-veg", "omelette"}

// mealCategories fixes the presentation order of menu sections.
var mealCategories = []string{"breakfast", "lunch", "snacks", "dinner"}

// Catalog loads the menu JSON file and serves the segregated vegetarian view,
// read-through cached in Redis. A missing or unreachable cache degrades to
// plain file reads.
type Catalog struct {
	path     string
	cache    *redis.Client
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewCatalog constructs the catalog. cache may be nil.
func NewCatalog(path string, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *Catalog {
	return &Catalog{path: path, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// Items returns the flat unfiltered menu list.
func (c *Catalog) Items(ctx context.Context) ([]domain.MenuItem, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read menu: %w", err)
	}
	var items []domain.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse menu: %w", err)
	}
	return items, nil
}

// ItemNames maps menu item ids to display names, for read-time rendering of
// stored order items.
func (c *Catalog) ItemNames(ctx context.Context) (map[int]string, error) {
	items, err := c.Items(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(items))
	for _, item := range items {
		names[item.ID] = item.Name
	}
	return names, nil
}

// Load returns the vegetarian menu segregated by meal category.
func (c *Catalog) Load(ctx context.Context) ([]domain.MenuSection, error) {
	if sections, ok := c.fromCache(ctx); ok {
		return sections, nil
	}

	items, err := c.Items(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		return []domain.MenuSection{{Subcategory: "Veg Menu", Items: []domain.MenuItem{}}}, nil
	}

	veg := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		if IsVegetarian(item) {
			veg = append(veg, item)
		}
	}

	sections := make([]domain.MenuSection, 0, len(mealCategories))
	for _, cat := range mealCategories {
		var matched []domain.MenuItem
		for _, item := range veg {
			if strings.EqualFold(item.Category, cat) {
				matched = append(matched, item)
			}
		}
		if len(matched) > 0 {
			sections = append(sections, domain.MenuSection{
				Subcategory: strings.ToUpper(cat[:1]) + cat[1:],
				Items:       matched,
			})
		}
	}

	c.toCache(ctx, sections)
	return sections, nil
}

// Save overwrites the menu JSON file and drops the cached view.
func (c *Catalog) Save(ctx context.Context, items []domain.MenuItem) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode menu: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write menu: %w", err)
	}
	if c.cache != nil {
		if err := c.cache.Del(ctx, cacheKey).Err(); err != nil {
			c.logger.Warn("failed to invalidate menu cache", zap.Error(err))
		}
	}
	return nil
}

// IsVegetarian reports whether the item passes the keyword denylist.
func IsVegetarian(item domain.MenuItem) bool {
	text := strings.ToLower(item.Name + " " + item.Extras)
	for _, kw := range nonVegKeywords {
		if strings.Contains(text, kw) {
			return false
		}
	}
	return true
}

func (c *Catalog) fromCache(ctx context.Context) ([]domain.MenuSection, bool) {
	if c.cache == nil {
		return nil, false
	}
	data, err := c.cache.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("menu cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var sections []domain.MenuSection
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, false
	}
	return sections, true
}

func (c *Catalog) toCache(ctx context.Context, sections []domain.MenuSection) {
	if c.cache == nil {
		return
	}
	data, err := json.Marshal(sections)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, cacheKey, data, c.cacheTTL).Err(); err != nil {
		c.logger.Warn("menu cache write failed", zap.Error(err))
	}
}
