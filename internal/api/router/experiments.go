package router

import (
	"errors"
	"net/http"

	"github.com/DjordjeVuckovic/trec-sweep/internal/apperr"
	"github.com/DjordjeVuckovic/trec-sweep/internal/experiment"
	"github.com/DjordjeVuckovic/trec-sweep/internal/storage"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ExperimentsRouter struct {
	e      *echo.Echo
	reader storage.Reader
	sweep  string
}

type ListResponse struct {
	Sweep       string                  `json:"sweep"`
	Count       int                     `json:"count"`
	Experiments []experiment.Experiment `json:"experiments"`
}

type VariantsResponse struct {
	Sweep    string                    `json:"sweep"`
	Variants []experiment.IndexVariant `json:"variants"`
}

func NewExperimentsRouter(e *echo.Echo, reader storage.Reader, sweep string) *ExperimentsRouter {
	return &ExperimentsRouter{
		e:      e,
		reader: reader,
		sweep:  sweep,
	}
}

func (r *ExperimentsRouter) Bind() {
	r.e.GET("/experiments", r.listHandler)
	r.e.GET("/experiments/:id", r.getHandler)
	r.e.GET("/variants", r.variantsHandler)
}

func (r *ExperimentsRouter) listHandler(c echo.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return err
	}

	exps, err := r.reader.List(c.Request().Context(), r.sweep)
	if err != nil {
		return err
	}

	matched := make([]experiment.Experiment, 0, len(exps))
	for _, exp := range exps {
		if filter.Match(exp) {
			matched = append(matched, exp)
		}
	}

	return c.JSON(http.StatusOK, ListResponse{
		Sweep:       r.sweep,
		Count:       len(matched),
		Experiments: matched,
	})
}

func (r *ExperimentsRouter) getHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewFieldValidation("id", "invalid experiment id", err)
	}

	exp, err := r.reader.Get(c.Request().Context(), r.sweep, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "experiment not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, exp)
}

func (r *ExperimentsRouter) variantsHandler(c echo.Context) error {
	exps, err := r.reader.List(c.Request().Context(), r.sweep)
	if err != nil {
		return err
	}

	seen := make(map[string]bool)
	variants := make([]experiment.IndexVariant, 0)
	for _, exp := range exps {
		if seen[exp.IndexPath] {
			continue
		}
		seen[exp.IndexPath] = true
		variants = append(variants, exp.Variant())
	}

	return c.JSON(http.StatusOK, VariantsResponse{Sweep: r.sweep, Variants: variants})
}

func parseFilter(c echo.Context) (experiment.Filter, error) {
	var f experiment.Filter

	if v := c.QueryParam("stemming"); v != "" {
		st, err := experiment.ParseStemming(v)
		if err != nil {
			return f, apperr.NewFieldValidation("stemming", "invalid stemming filter", err)
		}
		f.Stemming = &st
	}
	if v := c.QueryParam("stopwords"); v != "" {
		sw, err := experiment.ParseStopwords(v)
		if err != nil {
			return f, apperr.NewFieldValidation("stopwords", "invalid stopwords filter", err)
		}
		f.Stopwords = &sw
	}
	if v := c.QueryParam("model"); v != "" {
		m, err := experiment.ParseModel(v)
		if err != nil {
			return f, apperr.NewFieldValidation("model", "invalid model filter", err)
		}
		f.Model = &m
	}

	return f, nil
}
