package risk

import "github.com/shenikar/geo_safety_risk/internal/models"

// Неизвестные значения дают нулевую поправку.

var timeOfDayDelta = map[models.TimeOfDay]float64{
	models.TimeMorning:   2,
	models.TimeAfternoon: 1,
	models.TimeEvening:   -1,
	models.TimeNight:     -3,
}

var weatherDelta = map[models.WeatherCondition]float64{
	models.WeatherClear:        1,
	models.WeatherPartlyCloudy: 0,
	models.WeatherCloudy:       0,
	models.WeatherOvercast:     -0.5,
	models.WeatherDrizzle:      -1,
	models.WeatherRain:         -1.5,
	models.WeatherHeavyRain:    -2,
	models.WeatherFog:          -2,
	models.WeatherStorm:        -2.5,
	models.WeatherThunderstorm: -3,
}

var companionshipDelta = map[models.Companionship]float64{
	models.CompanionAlone:           -2,
	models.CompanionFriends:         1.5,
	models.CompanionFamily:          2,
	models.CompanionPublicTransport: -0.5,
	models.CompanionVehicle:         1,
	models.CompanionIndoorPublic:    1,
}

var areaTypeDelta = map[models.AreaType]float64{
	models.AreaResidential: 1,
	models.AreaCommercial:  0.5,
	models.AreaIndustrial:  -1,
	models.AreaHighway:     -1.5,
	models.AreaIsolated:    -2,
	models.AreaUnknown:     0,
}
