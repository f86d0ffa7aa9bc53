package models

// AddressComponents - результат обратного геокодирования
type AddressComponents struct {
	FormattedAddress string `json:"formatted_address"`
	HouseNumber      string `json:"house_number,omitempty"`
	Road             string `json:"road,omitempty"`
	Neighbourhood    string `json:"neighbourhood,omitempty"`
	Suburb           string `json:"suburb,omitempty"`
	Locality         string `json:"locality,omitempty"`
	City             string `json:"city,omitempty"`
	State            string `json:"state,omitempty"`
	Country          string `json:"country,omitempty"`
	Postcode         string `json:"postcode,omitempty"`
	Source           string `json:"source"`
}

// AreaName возвращает наиболее точное название района
func (a AddressComponents) AreaName() string {
	for _, v := range []string{a.Neighbourhood, a.Suburb, a.Locality, a.Road} {
		if v != "" {
			return v
		}
	}
	return ""
}

// WeatherReading - текущая погода в точке
type WeatherReading struct {
	Condition   WeatherCondition `json:"condition"`
	Temperature *float64         `json:"temperature,omitempty"`
	WeatherCode int              `json:"weather_code"`
}
