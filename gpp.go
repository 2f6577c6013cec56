// Package gpp decodes IAB Global Privacy Platform consent strings.
package gpp

import (
	"fmt"
	"strings"
	"sync"

	"github.com/prebid/go-gpp/bitutils"
	"github.com/prebid/go-gpp/constants"
	"github.com/prebid/go-gpp/errortypes"
	"github.com/prebid/go-gpp/sections"
)

const (
	gppHeaderType = 3
	gppVersion    = 1
)

// GppContainer holds a parsed GPP string. Parse reads only the header; the
// section payloads stay raw until they are asked for, and every decode
// outcome, failures included, is cached per container.
type GppContainer struct {
	// Version is the GPP specification version from the header.
	Version uint8

	// SectionTypes lists the section ids in header order, including ids
	// this build cannot decode.
	SectionTypes []constants.SectionID

	raw map[constants.SectionID]string

	mu    sync.RWMutex
	cache map[constants.SectionID]SectionResult
}

// SectionResult pairs a decoded section with the error that decoding it
// produced. Exactly one of the two is set.
type SectionResult struct {
	Section sections.Section
	Err     error
}

// Parse splits a GPP string and decodes its header segment. Section payloads
// are validated lazily by DecodeSection, so a malformed section does not fail
// Parse.
func Parse(raw string) (*GppContainer, error) {
	parts := strings.Split(raw, "~")
	for i, part := range parts {
		if part == "" {
			return nil, &errortypes.MalformedInput{
				Message: fmt.Sprintf("empty segment at index %d", i),
			}
		}
	}

	version, ids, err := parseHeader(parts[0])
	if err != nil {
		return nil, err
	}
	if len(ids) != len(parts)-1 {
		return nil, &errortypes.MalformedInput{
			Message: fmt.Sprintf("header declares %d sections, but %d are present", len(ids), len(parts)-1),
		}
	}

	c := &GppContainer{
		Version:      version,
		SectionTypes: make([]constants.SectionID, 0, len(ids)),
		raw:          make(map[constants.SectionID]string, len(ids)),
		cache:        make(map[constants.SectionID]SectionResult, len(ids)),
	}
	for i, id := range ids {
		sectionID := constants.SectionID(id)
		if _, ok := c.raw[sectionID]; ok {
			return nil, &errortypes.MalformedInput{
				Message: fmt.Sprintf("section id %d declared twice", id),
			}
		}
		c.SectionTypes = append(c.SectionTypes, sectionID)
		c.raw[sectionID] = parts[i+1]
	}
	return c, nil
}

func parseHeader(header string) (uint8, []uint16, error) {
	data, err := bitutils.DecodeBase64URL(header)
	if err != nil {
		return 0, nil, err
	}
	r := bitutils.NewBitReader(data)

	headerType, err := r.ReadUint(6)
	if err != nil {
		return 0, nil, err
	}
	if headerType != gppHeaderType {
		return 0, nil, &errortypes.MalformedInput{
			Message: fmt.Sprintf("a GPP string starts with header type %d, got %d", gppHeaderType, headerType),
		}
	}

	version, err := r.ReadUint(6)
	if err != nil {
		return 0, nil, err
	}
	if version > gppVersion {
		return 0, nil, &errortypes.UnsupportedVersion{
			Message: fmt.Sprintf("unsupported GPP version %d, this build reads version %d", version, gppVersion),
		}
	}
	if version != gppVersion {
		return 0, nil, &errortypes.MalformedInput{
			Message: fmt.Sprintf("invalid GPP version %d", version),
		}
	}

	ids, err := r.ReadFibonacciRange()
	if err != nil {
		return 0, nil, err
	}

	for r.RemainingBits() > 0 {
		n := r.RemainingBits()
		if n > 64 {
			n = 64
		}
		val, err := r.ReadUint(n)
		if err != nil {
			return 0, nil, err
		}
		if val != 0 {
			return 0, nil, &errortypes.MalformedInput{
				Message: "trailing header bits are not zero",
			}
		}
	}
	return uint8(version), ids, nil
}

// Section returns the raw text of one section, if the header declared it.
func (c *GppContainer) Section(id constants.SectionID) (string, bool) {
	raw, ok := c.raw[id]
	return raw, ok
}

// DecodeSection decodes one section, caching the outcome. A section that
// failed once fails the same way on every later call without being re-read.
func (c *GppContainer) DecodeSection(id constants.SectionID) (sections.Section, error) {
	c.mu.RLock()
	res, ok := c.cache[id]
	c.mu.RUnlock()
	if ok {
		return res.Section, res.Err
	}

	raw, ok := c.raw[id]
	if !ok {
		return nil, &errortypes.SectionNotPresent{
			Message: fmt.Sprintf("the string does not contain section %s (id %d)", id, int(id)),
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if res, ok := c.cache[id]; ok {
		return res.Section, res.Err
	}

	section, err := sections.Decode(id, raw)
	c.cache[id] = SectionResult{Section: section, Err: err}
	return section, err
}

// DecodeAll decodes every declared section. A failure in one section does not
// touch the others; each id maps to its own result.
func (c *GppContainer) DecodeAll() map[constants.SectionID]SectionResult {
	results := make(map[constants.SectionID]SectionResult, len(c.SectionTypes))
	for _, id := range c.SectionTypes {
		section, err := c.DecodeSection(id)
		results[id] = SectionResult{Section: section, Err: err}
	}
	return results
}
