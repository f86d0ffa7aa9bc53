package lookup

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shenikar/geo_safety_risk/internal/models"
)

const ProviderOpenMeteo = "open_meteo"

type openMeteoResponse struct {
	Current *struct {
		Temperature *float64 `json:"temperature_2m"`
		WeatherCode *int     `json:"weather_code"`
	} `json:"current"`
}

// OpenMeteoClient получает текущую погоду
type OpenMeteoClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewOpenMeteoClient(baseURL string, httpClient *http.Client) *OpenMeteoClient {
	return &OpenMeteoClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: defaultHTTPClient(httpClient),
	}
}

func (c *OpenMeteoClient) Current(ctx context.Context, lat, lon float64) (*models.WeatherReading, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', 4, 64))
	q.Set("current", "temperature_2m,weather_code")

	var r openMeteoResponse
	if err := getJSON(ctx, c.httpClient, ProviderOpenMeteo, c.baseURL+"/v1/forecast?"+q.Encode(), nil, &r); err != nil {
		return nil, err
	}
	if r.Current == nil || r.Current.WeatherCode == nil {
		return nil, lookupError(ProviderOpenMeteo, "response has no current weather")
	}

	return &models.WeatherReading{
		Condition:   WeatherFromCode(*r.Current.WeatherCode),
		Temperature: r.Current.Temperature,
		WeatherCode: *r.Current.WeatherCode,
	}, nil
}

// WeatherFromCode переводит код WMO в погодное состояние
func WeatherFromCode(code int) models.WeatherCondition {
	switch code {
	case 0, 1:
		return models.WeatherClear
	case 2:
		return models.WeatherPartlyCloudy
	case 3:
		return models.WeatherOvercast
	case 45, 48:
		return models.WeatherFog
	case 51, 53, 55:
		return models.WeatherDrizzle
	case 61, 63, 80, 81:
		return models.WeatherRain
	case 65, 82:
		return models.WeatherHeavyRain
	case 95, 96, 99:
		return models.WeatherThunderstorm
	default:
		return models.WeatherUnknown
	}
}
