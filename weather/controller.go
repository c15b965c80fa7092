package weather

import (
	"fmt"
	"net/http"

	"github.com/drblury/swaggerversioning/apiversion"
	"github.com/drblury/swaggerversioning/binding"
	"github.com/drblury/swaggerversioning/endpoint"
	"github.com/drblury/swaggerversioning/responder"
)

const (
	defaultDays = 5
	maxDays     = 14
	tag         = "WeatherForecast"
)

var (
	// V1 is the original, deprecated API version.
	V1 = apiversion.New(1, 0)
	// V2 is the current API version.
	V2 = apiversion.New(2, 0)
)

// ForecastParams are the query parameters of the v2 forecast.
type ForecastParams struct {
	Days int `query:"days" description:"Number of days to forecast" default:"5" minimum:"1" maximum:"14"`
}

// ForecastSource produces the forecasts served by a Controller.
type ForecastSource interface {
	Forecast(days int) []Forecast
}

// Controller serves the forecast endpoints of every version.
type Controller struct {
	forecaster ForecastSource
	resp       *responder.Responder
}

// NewController returns a Controller. A nil forecaster gets a Forecaster.
// resp should classify errors with ClassifyError; a nil resp gets one that
// does.
func NewController(forecaster ForecastSource, resp *responder.Responder) *Controller {
	if forecaster == nil {
		forecaster = NewForecaster()
	}
	if resp == nil {
		resp = responder.NewResponder(responder.WithErrorClassifier(ClassifyError))
	}
	return &Controller{forecaster: forecaster, resp: resp}
}

// GetV1 returns the forecast for the next five days.
func (c *Controller) GetV1(w http.ResponseWriter, r *http.Request) {
	c.respond(w, r, defaultDays)
}

// GetV2 returns the forecast for the requested number of days.
func (c *Controller) GetV2(w http.ResponseWriter, r *http.Request) {
	var params ForecastParams
	if err := binding.Bind(r, &params); err != nil {
		c.resp.HandleErrors(w, r, err)
		return
	}
	if params.Days < 1 || params.Days > maxDays {
		c.resp.HandleErrors(w, r, fmt.Errorf("%w: must be between 1 and %d, got %d", ErrDaysOutOfRange, maxDays, params.Days))
		return
	}
	c.respond(w, r, params.Days)
}

func (c *Controller) respond(w http.ResponseWriter, r *http.Request, days int) {
	forecasts := c.forecaster.Forecast(days)
	if len(forecasts) == 0 {
		c.resp.HandleErrors(w, r, ErrNoForecast)
		return
	}
	c.resp.RespondWithJSON(w, r, http.StatusOK, forecasts)
}

// Endpoints declares the forecast operations of every version.
func (c *Controller) Endpoints() []endpoint.Endpoint {
	return []endpoint.Endpoint{
		{
			Version:     V1,
			Deprecated:  true,
			Method:      http.MethodGet,
			Path:        "/v1/WeatherForecast",
			OperationID: "getWeatherForecast",
			Summary:     "Weather Forecast",
			Description: "List of weather forecast for the next five days",
			Tags:        []string{tag},
			Response:    []Forecast{},
			Responses: map[int]string{
				http.StatusOK:       "Returns weather forecast for the next five days",
				http.StatusNotFound: "Not Found, the resource could not be found",
			},
			Handler: http.HandlerFunc(c.GetV1),
		},
		{
			Version:     V2,
			Method:      http.MethodGet,
			Path:        "/v2/WeatherForecastV2",
			OperationID: "getWeatherForecastV2",
			Summary:     "Weather Forecast",
			Description: "List of weather forecast for the requested number of days",
			Tags:        []string{tag},
			Params:      ForecastParams{},
			Response:    []Forecast{},
			Responses: map[int]string{
				http.StatusOK:         "Returns weather forecast for the requested days",
				http.StatusBadRequest: "The days parameter is out of range",
				http.StatusNotFound:   "Not Found, the resource could not be found",
			},
			Handler: http.HandlerFunc(c.GetV2),
		},
	}
}

// Register adds the controller's endpoints to catalog.
func (c *Controller) Register(catalog *endpoint.Catalog) error {
	for _, ep := range c.Endpoints() {
		if err := catalog.Add(ep); err != nil {
			return fmt.Errorf("register weather endpoints: %w", err)
		}
	}
	return nil
}
