package lookup

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shenikar/geo_safety_risk/internal/models"
)

const ProviderBigDataCloud = "bigdatacloud"

type bigDataCloudResponse struct {
	City                 string `json:"city"`
	Locality             string `json:"locality"`
	PrincipalSubdivision string `json:"principalSubdivision"`
	CountryName          string `json:"countryName"`
	Postcode             string `json:"postcode"`
}

// BigDataCloudClient - резервный провайдер обратного геокодирования
type BigDataCloudClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewBigDataCloudClient(baseURL string, httpClient *http.Client) *BigDataCloudClient {
	return &BigDataCloudClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: defaultHTTPClient(httpClient),
	}
}

func (c *BigDataCloudClient) Name() string { return ProviderBigDataCloud }

func (c *BigDataCloudClient) Resolve(ctx context.Context, lat, lon float64) (*models.AddressComponents, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', 6, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', 6, 64))
	q.Set("localityLanguage", "en")

	var r bigDataCloudResponse
	if err := getJSON(ctx, c.httpClient, ProviderBigDataCloud, c.baseURL+"/data/reverse-geocode-client?"+q.Encode(), nil, &r); err != nil {
		return nil, err
	}

	parts := make([]string, 0, 4)
	for _, p := range []string{r.Locality, r.City, r.PrincipalSubdivision, r.CountryName} {
		if p != "" && (len(parts) == 0 || parts[len(parts)-1] != p) {
			parts = append(parts, p)
		}
	}

	return &models.AddressComponents{
		FormattedAddress: strings.Join(parts, ", "),
		Locality:         r.Locality,
		City:             r.City,
		State:            r.PrincipalSubdivision,
		Country:          r.CountryName,
		Postcode:         r.Postcode,
		Source:           ProviderBigDataCloud,
	}, nil
}
