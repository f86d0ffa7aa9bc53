package models

import "fmt"

type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeNight     TimeOfDay = "night"
)

// TimeOfDayFromHour переводит час (0-23) в период суток
func TimeOfDayFromHour(hour int) TimeOfDay {
	switch {
	case hour >= 5 && hour < 12:
		return TimeMorning
	case hour >= 12 && hour < 17:
		return TimeAfternoon
	case hour >= 17 && hour < 21:
		return TimeEvening
	default:
		return TimeNight
	}
}

type WeatherCondition string

const (
	WeatherClear        WeatherCondition = "clear"
	WeatherPartlyCloudy WeatherCondition = "partly_cloudy"
	WeatherCloudy       WeatherCondition = "cloudy"
	WeatherOvercast     WeatherCondition = "overcast"
	WeatherDrizzle      WeatherCondition = "drizzle"
	WeatherRain         WeatherCondition = "rain"
	WeatherHeavyRain    WeatherCondition = "heavy_rain"
	WeatherFog          WeatherCondition = "fog"
	WeatherStorm        WeatherCondition = "storm"
	WeatherThunderstorm WeatherCondition = "thunderstorm"
	WeatherUnknown      WeatherCondition = "unknown"
)

// IsAdverse - погода, при которой выдается предупреждение
func (w WeatherCondition) IsAdverse() bool {
	switch w {
	case WeatherRain, WeatherHeavyRain, WeatherStorm, WeatherFog, WeatherThunderstorm:
		return true
	}
	return false
}

type Companionship string

const (
	CompanionAlone           Companionship = "alone"
	CompanionFriends         Companionship = "with_friends"
	CompanionFamily          Companionship = "family"
	CompanionPublicTransport Companionship = "public_transport"
	CompanionVehicle         Companionship = "vehicle"
	CompanionIndoorPublic    Companionship = "indoor_public"
)

type AreaType string

const (
	AreaResidential AreaType = "residential"
	AreaCommercial  AreaType = "commercial"
	AreaIndustrial  AreaType = "industrial"
	AreaHighway     AreaType = "highway"
	AreaIsolated    AreaType = "isolated"
	AreaUnknown     AreaType = "unknown"
)

var (
	knownTimes = map[TimeOfDay]bool{TimeMorning: true, TimeAfternoon: true, TimeEvening: true, TimeNight: true}

	knownWeather = map[WeatherCondition]bool{
		WeatherClear: true, WeatherPartlyCloudy: true, WeatherCloudy: true, WeatherOvercast: true,
		WeatherDrizzle: true, WeatherRain: true, WeatherHeavyRain: true, WeatherFog: true,
		WeatherStorm: true, WeatherThunderstorm: true, WeatherUnknown: true,
	}

	knownCompanions = map[Companionship]bool{
		CompanionAlone: true, CompanionFriends: true, CompanionFamily: true,
		CompanionPublicTransport: true, CompanionVehicle: true, CompanionIndoorPublic: true,
	}

	knownAreas = map[AreaType]bool{
		AreaResidential: true, AreaCommercial: true, AreaIndustrial: true,
		AreaHighway: true, AreaIsolated: true, AreaUnknown: true,
	}
)

// Context - ситуационные параметры запроса. Пустое поле означает "не задано".
type Context struct {
	TimeOfDay     TimeOfDay        `json:"time_of_day,omitempty"`
	Weather       WeatherCondition `json:"weather,omitempty"`
	Companionship Companionship    `json:"companionship,omitempty"`
	AreaType      AreaType         `json:"area_type,omitempty"`
}

// Validate отклоняет непустые значения вне известных перечислений
func (c Context) Validate() error {
	if c.TimeOfDay != "" && !knownTimes[c.TimeOfDay] {
		return fmt.Errorf("%w: unknown time_of_day %q", ErrInvalidInput, c.TimeOfDay)
	}
	if c.Weather != "" && !knownWeather[c.Weather] {
		return fmt.Errorf("%w: unknown weather %q", ErrInvalidInput, c.Weather)
	}
	if c.Companionship != "" && !knownCompanions[c.Companionship] {
		return fmt.Errorf("%w: unknown companionship %q", ErrInvalidInput, c.Companionship)
	}
	if c.AreaType != "" && !knownAreas[c.AreaType] {
		return fmt.Errorf("%w: unknown area_type %q", ErrInvalidInput, c.AreaType)
	}
	return nil
}
