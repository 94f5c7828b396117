package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/username/reformcal/internal/render"
)

// MonthResponse is the JSON form of one month's calendar.
type MonthResponse struct {
	Year             int      `json:"year"`
	Month            int      `json:"month"`
	MonthName        string   `json:"month_name"`
	Days             int      `json:"days"`
	Weekdays         []string `json:"weekdays"`
	Grid             [][]int  `json:"grid"`
	ReformationMonth bool     `json:"reformation_month"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMonth(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1 {
		s.writeError(w, http.StatusBadRequest, "year must be an integer >= 1")
		return
	}
	monthNum, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		s.writeError(w, http.StatusBadRequest, "month must be an integer in [1, 12]")
		return
	}
	month := time.Month(monthNum)

	grid := s.cal.MonthGrid(month, year)

	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := render.Month(w, grid, month, year); err != nil {
			s.logger.Warn("failed to write text calendar", zap.Error(err))
		}
		return
	}

	ref := s.cal.Reformation()
	s.writeJSON(w, http.StatusOK, MonthResponse{
		Year:             year,
		Month:            monthNum,
		MonthName:        month.String(),
		Days:             s.cal.DaysInMonth(month, year),
		Weekdays:         render.WeekdayAbbrevs[:],
		Grid:             grid.Rows(),
		ReformationMonth: year == ref.Year && month == ref.Month,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}
