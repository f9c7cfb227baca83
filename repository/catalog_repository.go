package repository

import (
	"context"
	"encoding/json"
	"log"

	"backend/entity"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CatalogRepository serves the metal and stone type catalogs. These sit on the
// estimator's hot path, so reads go cache-aside through redis when a client is
// configured; cache errors fall through to the DB and are only logged.
type CatalogRepository struct {
	DB  *gorm.DB
	RDB *redis.Client
}

func NewCatalogRepository(db *gorm.DB, rdb *redis.Client) *CatalogRepository {
	return &CatalogRepository{DB: db, RDB: rdb}
}

func (r *CatalogRepository) ListMetals(ctx context.Context) ([]entity.MetalType, error) {
	var metals []entity.MetalType
	if r.cacheGet(ctx, keyCatalogMetals, &metals) {
		return metals, nil
	}
	if err := r.DB.Order("id").Find(&metals).Error; err != nil {
		return nil, err
	}
	r.cacheSet(ctx, keyCatalogMetals, metals)
	return metals, nil
}

func (r *CatalogRepository) ListStones(ctx context.Context) ([]entity.StoneType, error) {
	var stones []entity.StoneType
	if r.cacheGet(ctx, keyCatalogStones, &stones) {
		return stones, nil
	}
	if err := r.DB.Order("id").Find(&stones).Error; err != nil {
		return nil, err
	}
	r.cacheSet(ctx, keyCatalogStones, stones)
	return stones, nil
}

func (r *CatalogRepository) CreateMetal(ctx context.Context, m *entity.MetalType) error {
	if err := r.DB.Create(m).Error; err != nil {
		return err
	}
	r.invalidate(ctx, keyCatalogMetals)
	return nil
}

func (r *CatalogRepository) UpdateMetal(ctx context.Context, id uint, updates map[string]any) error {
	if err := r.DB.Model(&entity.MetalType{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return err
	}
	r.invalidate(ctx, keyCatalogMetals)
	return nil
}

func (r *CatalogRepository) CreateStone(ctx context.Context, s *entity.StoneType) error {
	if err := r.DB.Create(s).Error; err != nil {
		return err
	}
	r.invalidate(ctx, keyCatalogStones)
	return nil
}

func (r *CatalogRepository) UpdateStone(ctx context.Context, id uint, updates map[string]any) error {
	if err := r.DB.Model(&entity.StoneType{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return err
	}
	r.invalidate(ctx, keyCatalogStones)
	return nil
}

// ----- cache-aside helpers -----

func (r *CatalogRepository) cacheGet(ctx context.Context, key string, dst any) bool {
	if r.RDB == nil {
		return false
	}
	raw, err := r.RDB.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("catalog cache get %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		log.Printf("catalog cache decode %s: %v", key, err)
		return false
	}
	return true
}

func (r *CatalogRepository) cacheSet(ctx context.Context, key string, v any) {
	if r.RDB == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := r.RDB.Set(ctx, key, raw, ttlCatalog).Err(); err != nil {
		log.Printf("catalog cache set %s: %v", key, err)
	}
}

func (r *CatalogRepository) invalidate(ctx context.Context, key string) {
	if r.RDB == nil {
		return
	}
	if err := r.RDB.Del(ctx, key).Err(); err != nil {
		log.Printf("catalog cache del %s: %v", key, err)
	}
}
