package lookup

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/serjvanilla/go-overpass"
	"github.com/shenikar/geo_safety_risk/internal/metrics"
	"github.com/shenikar/geo_safety_risk/internal/models"
)

const (
	ProviderOverpass = "overpass"

	defaultLanduseRadiusM = 300
)

var landuseAreaTypes = map[string]models.AreaType{
	"residential":  models.AreaResidential,
	"commercial":   models.AreaCommercial,
	"retail":       models.AreaCommercial,
	"industrial":   models.AreaIndustrial,
	"port":         models.AreaIndustrial,
	"railway":      models.AreaIndustrial,
	"farmland":     models.AreaIsolated,
	"forest":       models.AreaIsolated,
	"meadow":       models.AreaIsolated,
	"grass":        models.AreaIsolated,
	"orchard":      models.AreaIsolated,
	"quarry":       models.AreaIsolated,
	"construction": models.AreaIndustrial,
}

var majorHighways = map[string]struct{}{
	"motorway": {}, "trunk": {}, "motorway_link": {}, "trunk_link": {},
}

// areaPriority - порядок разрешения ничьей при голосовании
var areaPriority = map[models.AreaType]int{
	models.AreaIsolated:    0,
	models.AreaIndustrial:  1,
	models.AreaCommercial:  2,
	models.AreaResidential: 3,
}

// OverpassAreaClassifier определяет тип района по тегам landuse OpenStreetMap
type OverpassAreaClassifier struct {
	client  *overpass.Client
	radiusM int
	timeout time.Duration
}

func NewOverpassAreaClassifier(endpoint string, timeout time.Duration) *OverpassAreaClassifier {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := &http.Client{
		Timeout: timeout,
	}
	client := overpass.NewWithSettings(endpoint, 2, httpClient)
	return &OverpassAreaClassifier{
		client:  &client,
		radiusM: defaultLanduseRadiusM,
		timeout: timeout,
	}
}

func (c *OverpassAreaClassifier) Classify(ctx context.Context, loc models.Location, _ *models.AddressComponents) (models.AreaType, error) {
	query := fmt.Sprintf(`
		[out:json][timeout:%d];
		(
			way(around:%d,%f,%f)["landuse"];
			relation(around:%d,%f,%f)["landuse"];
			way(around:%d,%f,%f)["highway"~"^(motorway|trunk)(_link)?$"];
		);
		out tags;
	`,
		int(c.timeout.Seconds()),
		c.radiusM, loc.Latitude, loc.Longitude,
		c.radiusM, loc.Latitude, loc.Longitude,
		c.radiusM/3, loc.Latitude, loc.Longitude)

	result, err := c.executeQuery(ctx, query)
	if err != nil {
		return models.AreaUnknown, err
	}

	tags := make([]map[string]string, 0, len(result.Ways)+len(result.Relations))
	for _, way := range result.Ways {
		tags = append(tags, way.Tags)
	}
	for _, rel := range result.Relations {
		tags = append(tags, rel.Tags)
	}
	return ClassifyOSMTags(tags), nil
}

func (c *OverpassAreaClassifier) executeQuery(ctx context.Context, query string) (*overpass.Result, error) {
	metrics.LookupRequestsTotal.WithLabelValues(ProviderOverpass).Inc()
	t0 := time.Now()
	defer func() {
		metrics.LookupDurationMs.WithLabelValues(ProviderOverpass).Observe(float64(time.Since(t0).Milliseconds()))
	}()

	type queryResult struct {
		result overpass.Result
		err    error
	}
	done := make(chan queryResult, 1)
	go func() {
		r, err := c.client.Query(query)
		done <- queryResult{result: r, err: err}
	}()

	select {
	case <-ctx.Done():
		metrics.LookupFailTotal.WithLabelValues(ProviderOverpass).Inc()
		return nil, fmt.Errorf("%w: overpass: %v", models.ErrLookupFailed, ctx.Err())
	case r := <-done:
		if r.err != nil {
			metrics.LookupFailTotal.WithLabelValues(ProviderOverpass).Inc()
			return nil, fmt.Errorf("%w: overpass query failed: %v", models.ErrLookupFailed, r.err)
		}
		return &r.result, nil
	}
}

// ClassifyOSMTags голосует по тегам landuse. Магистраль рядом учитывается,
// только если landuse не найден.
func ClassifyOSMTags(elements []map[string]string) models.AreaType {
	votes := make(map[models.AreaType]int)
	nearHighway := false
	for _, tags := range elements {
		if areaType, ok := landuseAreaTypes[tags["landuse"]]; ok {
			votes[areaType]++
		}
		if _, ok := majorHighways[tags["highway"]]; ok {
			nearHighway = true
		}
	}

	if len(votes) == 0 {
		if nearHighway {
			return models.AreaHighway
		}
		return models.AreaUnknown
	}

	candidates := make([]models.AreaType, 0, len(votes))
	for t := range votes {
		candidates = append(candidates, t)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if votes[candidates[i]] != votes[candidates[j]] {
			return votes[candidates[i]] > votes[candidates[j]]
		}
		return areaPriority[candidates[i]] < areaPriority[candidates[j]]
	})
	return candidates[0]
}
