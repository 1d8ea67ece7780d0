package gamification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/seanfitz121/gymtracker/internal/telemetry/tracing"
)

type RanksRepo struct {
	db *pgxpool.Pool
}

func NewRanksRepo(db *pgxpool.Pool) *RanksRepo {
	return &RanksRepo{
		db: db,
	}
}

// Ladder returns all ranks of a scale, highest threshold first.
func (r *RanksRepo) Ladder(ctx context.Context, scaleCode string) (_ []RankDefinition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.ranks.ladder")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("scale", scaleCode))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT scale_code, code, name, color, icon, min_xp, sort_order
			FROM rank_definition
			WHERE scale_code = $1
			ORDER BY min_xp DESC, sort_order DESC;`,
		scaleCode,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ladder := make([]RankDefinition, 0)
	for rows.Next() {
		var def RankDefinition
		if err := rows.Scan(
			&def.ScaleCode, &def.Code, &def.Name, &def.Color, &def.Icon, &def.MinXP, &def.SortOrder,
		); err != nil {
			return nil, err
		}
		ladder = append(ladder, def)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ladder, nil
}

// Upsert adds or replaces a rank definition.
func (r *RanksRepo) Upsert(ctx context.Context, def RankDefinition) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.ranks.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("scale", def.ScaleCode))
	span.SetAttributes(attribute.String("code", def.Code))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO rank_definition
				(scale_code, code, name, color, icon, min_xp, sort_order)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (scale_code, code) DO UPDATE SET
				name = EXCLUDED.name, color = EXCLUDED.color, icon = EXCLUDED.icon,
				min_xp = EXCLUDED.min_xp, sort_order = EXCLUDED.sort_order;`,
		def.ScaleCode, def.Code, def.Name, def.Color, def.Icon, def.MinXP, def.SortOrder,
	)
	return err
}

// CachedLadders keeps rank ladders in memory for a TTL. Ladders change rarely
// and are read on every XP grant.
type CachedLadders struct {
	source     ladderSource
	cache      *freecache.Cache
	ttlSeconds int
}

func NewCachedLadders(source ladderSource, ttl time.Duration) *CachedLadders {
	megabyte := 1024 * 1024
	return &CachedLadders{
		source:     source,
		cache:      freecache.NewCache(megabyte),
		ttlSeconds: max(int(ttl.Seconds()), 1),
	}
}

func (c *CachedLadders) Ladder(ctx context.Context, scaleCode string) ([]RankDefinition, error) {
	cacheKey := []byte(fmt.Sprintf("ladder::%s", scaleCode))
	if ladderBytes, err := c.cache.Get(cacheKey); err == nil {
		var ladder []RankDefinition
		if err := json.Unmarshal(ladderBytes, &ladder); err == nil {
			return ladder, nil
		} else {
			log.Errorf("failed to unmarshal cached ladder %s: %s", scaleCode, err)
		}
	}

	ladder, err := c.source.Ladder(ctx, scaleCode)
	if err != nil {
		return nil, err
	}
	// empty ladders are not cached, so a freshly seeded scale is picked up right away
	if len(ladder) == 0 {
		return ladder, nil
	}

	ladderBytes, err := json.Marshal(ladder)
	if err != nil {
		log.Errorf("failed to marshal ladder %s: %s", scaleCode, err)
		return ladder, nil
	}
	if err := c.cache.Set(cacheKey, ladderBytes, c.ttlSeconds); err != nil {
		log.Errorf("failed to cache ladder %s: %s", scaleCode, err)
	}
	return ladder, nil
}

// Invalidate drops the cached ladder of a scale.
func (c *CachedLadders) Invalidate(scaleCode string) {
	c.cache.Del([]byte(fmt.Sprintf("ladder::%s", scaleCode)))
}
