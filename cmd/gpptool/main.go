// Command gpptool decodes a GPP consent string from the command line and
// prints the result as JSON.
package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/golang/glog"

	gpp "github.com/prebid/go-gpp"
	"github.com/prebid/go-gpp/constants"
	"github.com/prebid/go-gpp/sections"
)

var (
	gppString = flag.String("gpp", "", "GPP consent string to decode")
	sectionID = flag.Int("section", 0, "decode only the section with this id")
	eager     = flag.Bool("eager", false, "decode every declared section, reporting failures per section")
)

type output struct {
	Version      uint8                       `json:"version"`
	SectionTypes []constants.SectionID       `json:"sectionTypes"`
	Sections     map[string]sections.Section `json:"sections,omitempty"`
	Errors       map[string]string           `json:"errors,omitempty"`
}

func main() {
	flag.Parse()
	if *gppString == "" {
		glog.Exit("no GPP string given, use -gpp")
	}

	c, err := gpp.Parse(*gppString)
	if err != nil {
		glog.Exitf("cannot parse GPP string: %v", err)
	}

	out := output{
		Version:      c.Version,
		SectionTypes: c.SectionTypes,
	}

	switch {
	case *sectionID != 0:
		section, err := c.DecodeSection(constants.SectionID(*sectionID))
		if err != nil {
			glog.Exitf("cannot decode section %d: %v", *sectionID, err)
		}
		out.Sections = map[string]sections.Section{
			section.ID().String(): section,
		}
	case *eager:
		out.Sections = make(map[string]sections.Section)
		out.Errors = make(map[string]string)
		for id, result := range c.DecodeAll() {
			if result.Err != nil {
				out.Errors[id.String()] = result.Err.Error()
				continue
			}
			out.Sections[id.String()] = result.Section
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		glog.Exitf("cannot write output: %v", err)
	}
}
