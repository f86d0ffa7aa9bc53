package lookup

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shenikar/geo_safety_risk/internal/models"
)

const ProviderNominatim = "nominatim"

type nominatimResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
	Address     struct {
		HouseNumber   string `json:"house_number"`
		Road          string `json:"road"`
		Neighbourhood string `json:"neighbourhood"`
		Suburb        string `json:"suburb"`
		City          string `json:"city"`
		Town          string `json:"town"`
		Village       string `json:"village"`
		StateDistrict string `json:"state_district"`
		State         string `json:"state"`
		Country       string `json:"country"`
		Postcode      string `json:"postcode"`
	} `json:"address"`
}

// NominatimClient - обратное геокодирование через OpenStreetMap Nominatim
type NominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

func NewNominatimClient(baseURL, userAgent string, httpClient *http.Client) *NominatimClient {
	return &NominatimClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: defaultHTTPClient(httpClient),
	}
}

func (c *NominatimClient) Name() string { return ProviderNominatim }

// Resolve возвращает адрес для координат
func (c *NominatimClient) Resolve(ctx context.Context, lat, lon float64) (*models.AddressComponents, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", strconv.FormatFloat(lat, 'f', 6, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', 6, 64))
	q.Set("zoom", "18")
	q.Set("addressdetails", "1")

	// Nominatim требует идентифицирующий User-Agent
	headers := map[string]string{"User-Agent": c.userAgent}

	var r nominatimResponse
	if err := getJSON(ctx, c.httpClient, ProviderNominatim, c.baseURL+"/reverse?"+q.Encode(), headers, &r); err != nil {
		return nil, err
	}
	if r.Error != "" {
		return nil, lookupError(ProviderNominatim, r.Error)
	}

	city := firstNonEmpty(r.Address.City, r.Address.Town, r.Address.Village)
	return &models.AddressComponents{
		FormattedAddress: r.DisplayName,
		HouseNumber:      r.Address.HouseNumber,
		Road:             r.Address.Road,
		Neighbourhood:    r.Address.Neighbourhood,
		Suburb:           r.Address.Suburb,
		Locality:         firstNonEmpty(r.Address.Suburb, r.Address.StateDistrict),
		City:             city,
		State:            r.Address.State,
		Country:          r.Address.Country,
		Postcode:         r.Address.Postcode,
		Source:           ProviderNominatim,
	}, nil
}
