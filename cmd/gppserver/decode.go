package main

import (
	"encoding/json"
	"net/http"

	"github.com/golang/glog"
	"github.com/julienschmidt/httprouter"

	gpp "github.com/prebid/go-gpp"
	"github.com/prebid/go-gpp/constants"
	"github.com/prebid/go-gpp/sections"
)

type decodeResponse struct {
	Version      uint8                       `json:"version"`
	SectionTypes []constants.SectionID       `json:"sectionTypes"`
	Sections     map[string]sections.Section `json:"sections"`
	Errors       map[string]string           `json:"errors,omitempty"`
}

// handleDecode parses the string in the gpp query parameter and returns every
// section it declares. A header that cannot be parsed is a 400; a section
// that cannot be decoded is reported in the body next to the ones that could.
func handleDecode(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	raw := r.URL.Query().Get("gpp")
	if raw == "" {
		http.Error(w, "missing gpp query parameter", http.StatusBadRequest)
		return
	}

	c, err := gpp.Parse(raw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response := decodeResponse{
		Version:      c.Version,
		SectionTypes: c.SectionTypes,
		Sections:     make(map[string]sections.Section),
	}
	for id, result := range c.DecodeAll() {
		if result.Err != nil {
			if response.Errors == nil {
				response.Errors = make(map[string]string)
			}
			response.Errors[id.String()] = result.Err.Error()
			continue
		}
		response.Sections[id.String()] = result.Section
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		glog.Errorf("failed writing /decode response: %v", err)
	}
}
