package geo

import "math"

// EarthRadiusKm - средний радиус Земли, используемый во всех расчетах расстояний
const EarthRadiusKm = 6371.0

// kmPerDegreeLat - длина одного градуса широты в километрах
const kmPerDegreeLat = math.Pi * EarthRadiusKm / 180

// Haversine возвращает расстояние по большой окружности между двумя точками в км
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// CircleAreaKm2 - площадь круга поиска
func CircleAreaKm2(radiusKm float64) float64 {
	return math.Pi * radiusKm * radiusKm
}

// BoundingBox - прямоугольник в градусах, заведомо содержащий круг поиска.
// Используется как дешевый префильтр перед точным расчетом расстояния.
type BoundingBox struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
	// wrapLon - по долготе фильтр отключен (полюс или антимеридиан)
	wrapLon bool
}

// NewBoundingBox строит прямоугольник вокруг центра с небольшим запасом
func NewBoundingBox(lat, lon, radiusKm float64) BoundingBox {
	dLat := radiusKm/kmPerDegreeLat + 1e-9
	box := BoundingBox{
		MinLat: lat - dLat,
		MaxLat: lat + dLat,
	}

	cosLat := math.Cos(lat * math.Pi / 180)
	if box.MinLat <= -90 || box.MaxLat >= 90 || cosLat < 1e-6 {
		box.wrapLon = true
		return box
	}
	// на краях прямоугольника широта больше, градус долготы короче
	edge := math.Max(math.Abs(box.MinLat), math.Abs(box.MaxLat))
	cosEdge := math.Cos(edge * math.Pi / 180)
	dLon := radiusKm/(kmPerDegreeLat*cosEdge) + 1e-9
	if dLon >= 180 || lon-dLon < -180 || lon+dLon > 180 {
		box.wrapLon = true
		return box
	}
	box.MinLon = lon - dLon
	box.MaxLon = lon + dLon
	return box
}

// Contains проверяет попадание точки в прямоугольник
func (b BoundingBox) Contains(lat, lon float64) bool {
	if lat < b.MinLat || lat > b.MaxLat {
		return false
	}
	if b.wrapLon {
		return true
	}
	return lon >= b.MinLon && lon <= b.MaxLon
}
