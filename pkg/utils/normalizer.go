package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"travel-itinerary-service/internal/domain/entity"
	"travel-itinerary-service/pkg/logger"
)

// PayloadNormalizer turns raw supplier payload columns into canonical
// entities. The same field arrives under either of two external namings
// (camelCase or PascalCase depending on the upstream system), so all key
// lookups are case-insensitive.
type PayloadNormalizer struct {
	logger logger.Logger
}

// NewPayloadNormalizer creates a new payload normalizer
func NewPayloadNormalizer(logger logger.Logger) *PayloadNormalizer {
	return &PayloadNormalizer{
		logger: logger,
	}
}

// NormalizeSegments parses a flight-segments payload into canonical segments.
// Entries that cannot be decoded are skipped, never fatal.
func (n *PayloadNormalizer) NormalizeSegments(payload []byte) []entity.FlightSegment {
	raws := n.decodeList(payload, "flightSegments")
	if len(raws) == 0 {
		return nil
	}

	segments := make([]entity.FlightSegment, 0, len(raws))
	for _, raw := range raws {
		seg := entity.FlightSegment{
			FlightNumber:           stringField(raw, "flightNumber"),
			Airline:                stringField(raw, "airline"),
			Departure:              stringField(raw, "departure"),
			DepartureCity:          stringField(raw, "departureCity"),
			Arrival:                stringField(raw, "arrival"),
			ArrivalCity:            stringField(raw, "arrivalCity"),
			DepartureDate:          ParseDate(stringField(raw, "departureDate")),
			DepartureTimeScheduled: stringField(raw, "departureTimeScheduled"),
			ArrivalDate:            ParseDate(stringField(raw, "arrivalDate")),
			ArrivalTimeScheduled:   stringField(raw, "arrivalTimeScheduled"),
			DepartureTerminal:      stringField(raw, "departureTerminal"),
			ArrivalTerminal:        stringField(raw, "arrivalTerminal"),
			Duration:               stringField(raw, "duration"),
			CabinClass:             stringField(raw, "cabinClass"),
			Baggage:                stringField(raw, "baggage"),
		}
		segments = append(segments, seg)
	}
	return segments
}

// NormalizeTicketNumbers parses a ticket-numbers payload.
func (n *PayloadNormalizer) NormalizeTicketNumbers(payload []byte) []entity.TicketNumber {
	raws := n.decodeList(payload, "ticketNumbers")
	if len(raws) == 0 {
		return nil
	}

	tickets := make([]entity.TicketNumber, 0, len(raws))
	for _, raw := range raws {
		ticket := entity.TicketNumber{
			ClientID: stringField(raw, "clientId"),
			TicketNr: stringField(raw, "ticketNr"),
		}
		if ticket.TicketNr == "" {
			continue
		}
		tickets = append(tickets, ticket)
	}
	return tickets
}

// NormalizeBoardingPasses parses a boarding-passes payload.
func (n *PayloadNormalizer) NormalizeBoardingPasses(payload []byte) []entity.BoardingPass {
	raws := n.decodeList(payload, "boardingPasses")
	if len(raws) == 0 {
		return nil
	}

	passes := make([]entity.BoardingPass, 0, len(raws))
	for _, raw := range raws {
		pass := entity.BoardingPass{
			TravellerID: stringField(raw, "travellerId"),
			FileRef:     stringField(raw, "fileRef"),
		}
		if pass.FileRef == "" {
			continue
		}
		passes = append(passes, pass)
	}
	return passes
}

// NormalizeIDList parses a payload holding a list of identifiers. Numeric ids
// are converted to their decimal string form.
func (n *PayloadNormalizer) NormalizeIDList(payload []byte) []string {
	if len(payload) == 0 {
		return nil
	}

	var raws []interface{}
	if err := json.Unmarshal(payload, &raws); err != nil {
		n.logger.Warn("Failed to decode id list payload", "error", err)
		return nil
	}

	ids := make([]string, 0, len(raws))
	for _, raw := range raws {
		switch v := raw.(type) {
		case string:
			if v != "" {
				ids = append(ids, v)
			}
		case float64:
			ids = append(ids, fmt.Sprintf("%.0f", v))
		}
	}
	return ids
}

// decodeList decodes a JSON array of objects, tolerating an empty column.
func (n *PayloadNormalizer) decodeList(payload []byte, field string) []map[string]interface{} {
	if len(payload) == 0 {
		return nil
	}

	var raws []map[string]interface{}
	if err := json.Unmarshal(payload, &raws); err != nil {
		n.logger.Warn("Failed to decode payload column", "field", field, "error", err)
		return nil
	}
	return raws
}

// stringField looks up a key case-insensitively and returns its string value.
func stringField(raw map[string]interface{}, key string) string {
	if v, ok := raw[key]; ok {
		return toString(v)
	}
	for k, v := range raw {
		if strings.EqualFold(k, key) {
			return toString(v)
		}
	}
	return ""
}

func toString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return fmt.Sprintf("%.0f", s)
	default:
		return ""
	}
}
