package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/couchcryptid/rainharvest-service/internal/domain"
)

// maxUploadMemory bounds the in-memory portion of a segmentation upload;
// larger files spill to disk and are discarded unread.
const maxUploadMemory = 32 << 20

// soilInterpretation is the fixed advisory attached to every soil response.
const soilInterpretation = "Medium infiltration → recharge pit recommended"

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type segmentResponse struct {
	Rooftops []domain.AreaEstimate `json:"rooftops"`
}

type rainfallResponse struct {
	Location             domain.Coordinates `json:"location"`
	RainfallPredictionMm []*float64         `json:"rainfall_prediction_mm"`
}

type soilResponse struct {
	Location       domain.Coordinates `json:"location"`
	ClayContent    json.RawMessage    `json:"clay_content"`
	Interpretation string             `json:"interpretation"`
}

type voiceResponse struct {
	Response string `json:"response"`
}

type adoptionsResponse struct {
	Adoptions []domain.Adoption `json:"adoptions"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Message: "Backend running successfully",
	})
}

// handleSegment accepts one or more uploads under the "files" field and
// returns a mock area estimate per file. File content is ignored; only the
// names matter.
func (s *Server) handleSegment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck // temp file cleanup

	files := r.MultipartForm.File["files"]
	names := make([]string, 0, len(files))
	for _, fh := range files {
		names = append(names, fh.Filename)
	}

	s.metrics.SegmentFiles.Observe(float64(len(names)))
	s.logger.Debug("segmentation request", "files", len(names))

	writeJSON(w, http.StatusOK, segmentResponse{Rooftops: s.estimator.EstimateAreas(names)})
}

func (s *Server) handleCalc(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form: "+err.Error())
		return
	}

	area, err := requiredFloat(r, "area")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rainfall, err := requiredFloat(r, "rainfall")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	efficiency, err := optionalFloat(r, "efficiency", domain.DefaultEfficiency)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	tankCapacity, err := optionalFloat(r, "tank_capacity", domain.DefaultTankCapacityLiters)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := domain.CalculateHarvest(domain.HarvestInput{
		AreaSqm:            area,
		RainfallMm:         rainfall,
		Efficiency:         efficiency,
		TankCapacityLiters: tankCapacity,
	})
	if result.OverflowLiters > 0 {
		s.metrics.CalcOverflows.Inc()
	}

	writeJSON(w, http.StatusOK, result)
}

// handleRainfall proxies the forecast provider. Upstream failures degrade to
// an error payload with HTTP 200; the demo frontend treats any non-2xx as a
// hard fault.
func (s *Server) handleRainfall(w http.ResponseWriter, r *http.Request) {
	lat, lon, err := queryCoordinates(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sums, err := s.forecast.DailyPrecipitation(r.Context(), lat, lon)
	if err != nil {
		s.logger.Warn("forecast lookup failed", "lat", lat, "lon", lon, "error", err)
		writeJSON(w, http.StatusOK, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, rainfallResponse{
		Location:             domain.Coordinates{Lat: lat, Lon: lon},
		RainfallPredictionMm: sums,
	})
}

// handleSoil proxies the soil provider, annotating the raw clay payload with
// the fixed interpretation string.
func (s *Server) handleSoil(w http.ResponseWriter, r *http.Request) {
	lat, lon, err := queryCoordinates(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	clay, err := s.soil.ClayContent(r.Context(), lat, lon)
	if err != nil {
		s.logger.Warn("soil lookup failed", "lat", lat, "lon", lon, "error", err)
		writeJSON(w, http.StatusOK, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, soilResponse{
		Location:       domain.Coordinates{Lat: lat, Lon: lon},
		ClayContent:    clay,
		Interpretation: soilInterpretation,
	})
}

func (s *Server) handleVoice(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form: "+err.Error())
		return
	}
	if _, ok := r.PostForm["query"]; !ok {
		writeError(w, http.StatusBadRequest, "missing required field: query")
		return
	}

	writeJSON(w, http.StatusOK, voiceResponse{Response: domain.Reply(r.PostForm.Get("query"))})
}

func (s *Server) handleAdoptions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, adoptionsResponse{Adoptions: domain.Adoptions()})
}

func requiredFloat(r *http.Request, field string) (float64, error) {
	raw := r.PostForm.Get(field)
	if raw == "" {
		return 0, fieldError{field: field, reason: "missing required field"}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fieldError{field: field, reason: "not a number"}
	}
	return v, nil
}

func optionalFloat(r *http.Request, field string, def float64) (float64, error) {
	raw := r.PostForm.Get(field)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fieldError{field: field, reason: "not a number"}
	}
	return v, nil
}

func queryCoordinates(r *http.Request) (lat, lon float64, err error) {
	lat, err = queryFloat(r, "lat")
	if err != nil {
		return 0, 0, err
	}
	lon, err = queryFloat(r, "lon")
	if err != nil {
		return 0, 0, err
	}
	return lat, lon, nil
}

func queryFloat(r *http.Request, field string) (float64, error) {
	raw := r.URL.Query().Get(field)
	if raw == "" {
		return 0, fieldError{field: field, reason: "missing required parameter"}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fieldError{field: field, reason: "not a number"}
	}
	return v, nil
}

type fieldError struct {
	field  string
	reason string
}

func (e fieldError) Error() string {
	return e.reason + ": " + e.field
}
